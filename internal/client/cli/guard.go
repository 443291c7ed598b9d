package cli

import (
	"context"
	"fmt"
)

// commandFunc is one REPL command handler.
type commandFunc func(ctx context.Context) error

// protected gates a command on an established session. While the startup
// restore is still in flight the command is deferred rather than rejected,
// so a slow restore never bounces a returning user to the login prompt.
// An unauthenticated user is sent to login instead.
func (a *App) protected(fn commandFunc) commandFunc {
	return func(ctx context.Context) error {
		if a.session.Loading() {
			fmt.Fprintln(a.out, "Checking session, one moment...")
			return nil
		}
		if !a.session.IsAuthenticated() {
			fmt.Fprintln(a.out, "Please sign in first.")
			return a.Login(ctx)
		}
		return fn(ctx)
	}
}

// public gates the sign-in commands the symmetric way: a user who is already
// authenticated is shown the dashboard instead of a second login prompt.
func (a *App) public(fn commandFunc) commandFunc {
	return func(ctx context.Context) error {
		if a.session.Loading() {
			fmt.Fprintln(a.out, "Checking session, one moment...")
			return nil
		}
		if a.session.IsAuthenticated() {
			fmt.Fprintf(a.out, "Already signed in as %s.\n", a.status())
			return a.Dashboard(ctx)
		}
		return fn(ctx)
	}
}
