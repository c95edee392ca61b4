package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/storage"
	"github.com/dkurilov/homecal/internal/common"
	"github.com/dkurilov/homecal/internal/cryptox"
	"github.com/dkurilov/homecal/internal/logging"
)

const (
	collectionKey = "users"
	activeUserKey = "users__activeUser"
)

// KVRepository is a Repository over a storage.Backend. The collection is
// cached in memory and persisted as a whole on every mutation.
type KVRepository struct {
	backend  storage.Backend
	scheme   cryptox.PasswordScheme
	validate *validator.Validate
	log      logging.Logger
	users    map[string]models.User
}

func NewKVRepository(backend storage.Backend, scheme cryptox.PasswordScheme, log logging.Logger) *KVRepository {
	if scheme == nil {
		scheme = cryptox.Plaintext{}
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &KVRepository{
		backend:  backend,
		scheme:   scheme,
		validate: validator.New(),
		log:      log.With("store", "users"),
		users:    map[string]models.User{},
	}
}

func (r *KVRepository) Init(ctx context.Context) error {
	data, err := r.backend.Get(ctx, collectionKey)
	if err != nil {
		return fmt.Errorf("failed to read user collection: %w", err)
	}
	if data == nil {
		r.log.Info(ctx, "collection missing, creating", "key", collectionKey)
		r.users = map[string]models.User{}
		return r.save(ctx)
	}

	var loaded map[string]models.User
	if err := json.Unmarshal(data, &loaded); err != nil {
		// A corrupt collection reads as first-run state; the save below
		// overwrites it.
		r.log.Error(ctx, "collection unparseable, resetting", "error", err.Error())
		r.users = map[string]models.User{}
		return r.save(ctx)
	}
	if loaded == nil {
		loaded = map[string]models.User{}
	}
	r.users = loaded
	r.log.Info(ctx, "collection loaded", "count", len(r.users))
	return nil
}

func (r *KVRepository) save(ctx context.Context) error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("failed to encode user collection: %w", err)
	}
	if err := r.backend.Set(ctx, collectionKey, data); err != nil {
		return fmt.Errorf("failed to save user collection: %w", err)
	}
	r.log.Debug(ctx, "collection saved", "count", len(r.users))
	return nil
}

func (r *KVRepository) Add(ctx context.Context, cred models.Credentials) (models.User, error) {
	if err := r.validate.Struct(cred); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	for _, u := range r.users {
		if u.Username == cred.Username {
			return models.User{}, fmt.Errorf("%w: %s", common.ErrDuplicateUsername, cred.Username)
		}
	}

	encoded, err := r.scheme.Encode(cred.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to encode credentials: %w", err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: cred.Username,
		Password: encoded,
	}
	r.users[user.ID] = user
	if err := r.save(ctx); err != nil {
		delete(r.users, user.ID)
		return models.User{}, err
	}
	return user, nil
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return nil
	}
	removed := r.users[id]
	delete(r.users, id)
	if err := r.save(ctx); err != nil {
		r.users[id] = removed
		return err
	}
	return nil
}

func (r *KVRepository) All(ctx context.Context) (map[string]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string]models.User, len(r.users))
	for id, u := range r.users {
		out[id] = u
	}
	return out, nil
}

// Login scans ids in sorted order so that, should duplicate credentials
// exist, the same user wins on every call.
func (r *KVRepository) Login(ctx context.Context, username, password string) (*models.User, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		u := r.users[id]
		if u.Username != username || !r.scheme.Verify(u.Password, password) {
			continue
		}
		if err := r.SetActiveUser(ctx, id); err != nil {
			return nil, err
		}
		return r.ActiveUser(ctx)
	}
	return nil, nil
}

func (r *KVRepository) Logout(ctx context.Context) error {
	return r.ClearActiveUser(ctx)
}

func (r *KVRepository) ActiveUser(ctx context.Context) (*models.User, error) {
	data, err := r.backend.Get(ctx, activeUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read active user: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		// unreadable session means no session, not a crash
		r.log.Warn(ctx, "active user unparseable, treating as logged out", "error", err.Error())
		return nil, nil
	}
	return user, nil
}

func (r *KVRepository) SetActiveUser(ctx context.Context, id string) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("%w: user %s", common.ErrorNotFound, id)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode active user: %w", err)
	}
	if err := r.backend.Set(ctx, activeUserKey, data); err != nil {
		return fmt.Errorf("failed to save active user: %w", err)
	}
	return nil
}

func (r *KVRepository) ClearActiveUser(ctx context.Context) error {
	if err := r.backend.Set(ctx, activeUserKey, []byte("null")); err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}
