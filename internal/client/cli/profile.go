package cli

import (
	"context"
	"fmt"

	"github.com/veriscan/veriscan-go/internal/client/api"
)

// Profile prints the signed-in user's account details.
func (a *App) Profile(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		u := a.session.CurrentUser()
		fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
		fmt.Fprintf(a.out, "Full name: %s\n", u.FullName)
		if !u.CreatedAt.IsZero() {
			fmt.Fprintf(a.out, "Member since: %s\n", u.CreatedAt.Format("2006-01-02"))
		}
		return nil
	})(ctx)
}

// SetName prompts for a new display name and updates the profile.
func (a *App) SetName(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		fullName, err := getSimpleText(a.reader, "Enter new full name", a.out)
		if err != nil {
			return err
		}
		if err := a.session.UpdateProfile(ctx, fullName); err != nil {
			fmt.Fprintln(a.out, api.Detail(err, "Could not update the profile. Please try again."))
			return err
		}
		fmt.Fprintln(a.out, "Profile updated.")
		return nil
	})(ctx)
}

// Passwd changes the account password. The current password is verified
// before the new one is requested, matching the two-step flow of the
// service.
func (a *App) Passwd(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		current, err := getPassword("Enter current password", a.out)
		if err != nil {
			return err
		}
		if err := a.session.ValidatePassword(ctx, current); err != nil {
			fmt.Fprintln(a.out, api.Detail(err, "Current password is incorrect"))
			return err
		}

		next, err := getPassword("Enter new password", a.out)
		if err != nil {
			return err
		}
		confirm, err := getPassword("Repeat new password", a.out)
		if err != nil {
			return err
		}
		if next != confirm {
			fmt.Fprintln(a.out, "Passwords do not match.")
			return nil
		}

		if err := a.session.ChangePassword(ctx, current, next); err != nil {
			fmt.Fprintln(a.out, api.Detail(err, "Could not change the password. Please try again."))
			return err
		}
		fmt.Fprintln(a.out, "Password changed.")
		return nil
	})(ctx)
}
