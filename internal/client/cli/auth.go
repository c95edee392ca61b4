package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkurilov/homecal/internal/common"
	"github.com/dkurilov/homecal/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success the new account becomes the active session and the REPL
// switches to the logged-in command set. The password byte slice is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	user, err := a.auth.Register(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			fmt.Println("Username already taken")
			return err
		}
		a.log.Error(ctx, "register failed", "error", err)
		return err
	}

	// CLI convenience: a fresh account becomes the active session so the
	// user lands in the calendar without retyping the credentials
	loggedIn, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}
	a.user = loggedIn

	fmt.Printf("Welcome, %s!\n", user.Username)
	return nil
}

// Login prompts the user for credentials and tries to authenticate
// against the local user store.
//
// A credential mismatch prints "User does not exist" and leaves the
// session unchanged. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	user, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}
	if user == nil {
		fmt.Println("User does not exist")
		return nil
	}

	a.user = user
	fmt.Printf("Welcome, %s!\n", user.Username)
	return nil
}

// Logout clears the persisted active session and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	fmt.Println("Logged out")
	return nil
}
