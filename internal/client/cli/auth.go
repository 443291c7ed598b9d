package cli

import (
	"context"
	"fmt"

	"github.com/veriscan/veriscan-go/internal/client/api"
)

// getSimpleText, getPassword, and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for account details and creates the account. A successful
// registration signs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	return a.public(a.register)(ctx)
}

func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, password, fullName); err != nil {
		fmt.Fprintln(a.out, api.Detail(err, "Registration failed. Please try again."))
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.displayName())
	return nil
}

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {
	return a.public(a.login)(ctx)
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, api.Detail(err, "Login failed. Please try again."))
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.displayName())
	return nil
}

// Logout drops the session. It is safe to call when not signed in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the signed-in user's email.
func (a *App) WhoAmI(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		u := a.session.CurrentUser()
		fmt.Fprintln(a.out, u.Email)
		return nil
	})(ctx)
}
