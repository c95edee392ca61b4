package services

import (
	"context"

	"github.com/dkurilov/homecal/internal/client/repositories/users"
)

// SessionStatus is the outcome of a session-gate check.
type SessionStatus int

const (
	StatusUnauthenticated SessionStatus = iota
	StatusAuthenticated
)

// SessionGate decides, once on entry to the protected calendar view,
// whether a session exists. The decision is not re-checked for the
// lifetime of the view: a logout performed by another process sharing the
// data directory goes unobserved until the next entry.
type SessionGate struct {
	users users.Repository
}

func NewSessionGate(users users.Repository) *SessionGate {
	return &SessionGate{users: users}
}

// Check reads the persisted active-session snapshot. An absent or
// unreadable snapshot means Unauthenticated; the caller routes back to
// the login surface.
func (g *SessionGate) Check(ctx context.Context) (SessionStatus, error) {
	user, err := g.users.ActiveUser(ctx)
	if err != nil {
		return StatusUnauthenticated, err
	}
	if user == nil {
		return StatusUnauthenticated, nil
	}
	return StatusAuthenticated, nil
}
