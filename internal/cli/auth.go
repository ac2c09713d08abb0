package cli

import (
	"context"
	"errors"
	"os"

	"github.com/gallerie-app/gallerie/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password and creates an account.
// A successful signup also starts a session for the new user.
func (a *App) Signup(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, email, password, fullName)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			printlnFn("Email already exists.")
			return nil
		}
		return err
	}

	printlnFn("Welcome,", user.FullName+"!")
	return nil
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
			return nil
		}
		return err
	}

	printlnFn("Logged in as", user.Email)
	return nil
}

// Logout ends the current session. A no-op when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the account behind the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(user.FullName, "<"+user.Email+">", "member since", user.JoinDate)
	return nil
}
