// Package services contains the application services for the HomeCal
// client: authentication, event construction, and the session gate in
// front of the calendar view.
package services

import (
	"context"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/repositories/users"
)

// AuthService defines the account operations the auth surface calls.
//
// Contract:
//   - Register: create an account from raw credentials.
//   - Login: authenticate; a non-match is (nil, nil), not an error.
//   - Logout: clear the active session; idempotent.
//   - ActiveUser: the persisted session snapshot, or nil when logged out.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	ActiveUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	users users.Repository
}

// NewAuthService constructs an AuthService over the user repository.
func NewAuthService(users users.Repository) AuthService {
	return &authService{users: users}
}

func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	return a.users.Add(ctx, models.Credentials{Username: username, Password: password})
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	return a.users.Login(ctx, username, password)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.users.Logout(ctx)
}

func (a *authService) ActiveUser(ctx context.Context) (*models.User, error) {
	return a.users.ActiveUser(ctx)
}
