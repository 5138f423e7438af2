package cli

import (
	"context"
	"os"

	"github.com/avetins/sessionkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account.
//
// On success the session is established immediately and a confirmation is
// printed. The password byte slice is securely wiped before returning. On
// rejection the session error message is shown to the user and the error is
// returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		printlnFn("Registration failed:", a.session.State().Err)
		return err
	}

	printlnFn("Success! Registered as", email)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the prompt switches to the signed-in email right away; the
// full profile is enriched in the background. On rejection the session
// error message is shown to the user.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", a.session.State().Err)
		return err
	}

	printlnFn("Logged in as", email)
	return nil
}

// Logout drops the in-memory session and clears the durable cache.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	printlnFn("Logged out")
	return nil
}
