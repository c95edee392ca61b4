package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dkurilov/homecal/internal/client/config"
	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/repositories/events"
	"github.com/dkurilov/homecal/internal/client/repositories/users"
	"github.com/dkurilov/homecal/internal/client/services"
	"github.com/dkurilov/homecal/internal/client/storage"
	"github.com/dkurilov/homecal/internal/common"
	"github.com/dkurilov/homecal/internal/cryptox"
	"github.com/dkurilov/homecal/internal/logging"
	"github.com/dkurilov/homecal/internal/weather"
)

// App wires the stores, services and collaborator clients behind the
// REPL commands.
type App struct {
	config  *config.Config
	auth    services.AuthService
	events  services.EventService
	gate    *services.SessionGate
	weather *weather.Client
	log     logging.Logger
	reader  *bufio.Reader
	user    *models.User
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	usersRepo := users.NewKVRepository(backend, cryptox.Plaintext{}, log)
	if err := usersRepo.Init(ctx); err != nil {
		return nil, err
	}
	eventsRepo := events.NewKVRepository(backend, log)
	if err := eventsRepo.Init(ctx); err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		auth:   services.NewAuthService(usersRepo),
		events: services.NewEventService(eventsRepo),
		gate:   services.NewSessionGate(usersRepo),
		weather: weather.New(weather.Config{
			BaseURL:   cfg.WeatherBaseURL,
			Latitude:  cfg.WeatherLatitude,
			Longitude: cfg.WeatherLongitude,
			Timeout:   cfg.WeatherTimeout,
		}, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Run checks the session gate once, restores the persisted session if
// one exists, and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	status, err := a.gate.Check(ctx)
	if err != nil {
		return err
	}
	if status == services.StatusAuthenticated {
		user, err := a.auth.ActiveUser(ctx)
		if err != nil {
			return err
		}
		a.user = user
		if user != nil {
			fmt.Printf("Welcome back, %s\n", user.Username)
		}
	}

	runREPL(ctx, a, a.prompt, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// requireSession guards the calendar commands: without an active session
// the user is routed back to the login surface instead of reaching the
// event store.
func (a *App) requireSession() error {
	if a.user == nil {
		fmt.Println("Please login first")
		return common.ErrNotAuthenticated
	}
	return nil
}

func (a *App) prompt() string {
	if a.user == nil {
		return ""
	}
	return a.user.Username + " "
}
