package users

import (
	"context"

	"github.com/dkurilov/homecal/internal/client/models"
)

// Repository is the user-store surface consumed by the auth service and
// the session gate.
type Repository interface {
	// Init loads the persisted collection, establishing an empty one on
	// first run.
	Init(ctx context.Context) error

	// Add validates the credentials, assigns a fresh id, stores the user
	// and persists the collection. Duplicate usernames are rejected with
	// common.ErrDuplicateUsername.
	Add(ctx context.Context, cred models.Credentials) (models.User, error)

	// Remove deletes the user by id and persists; absent ids are a no-op.
	Remove(ctx context.Context, id string) error

	// All returns a copy of the collection keyed by id.
	All(ctx context.Context) (map[string]models.User, error)

	// Login returns the first user matching the credentials exactly and
	// records it as the active session. No match returns (nil, nil).
	Login(ctx context.Context, username, password string) (*models.User, error)

	// Logout clears the active session. Always succeeds, idempotent.
	Logout(ctx context.Context) error

	// ActiveUser re-reads the persisted session snapshot on every call,
	// so it reflects state written by an earlier process.
	ActiveUser(ctx context.Context) (*models.User, error)

	// SetActiveUser persists a snapshot of the user at id as the active
	// session.
	SetActiveUser(ctx context.Context, id string) error

	// ClearActiveUser persists the "no active user" marker.
	ClearActiveUser(ctx context.Context) error
}
