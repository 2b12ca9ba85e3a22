package cli

import (
	"context"
	"fmt"
)

// Register prompts for the new account's details and creates it. On success
// the user is signed in right away, mirroring the backend's register+login
// flow.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, password, fullName); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome! Your account is ready and you are signed in.")
	fmt.Fprintln(a.out, "A 14-day Pro trial is active on your account.")
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

// Logout evicts the credential and forgets the user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami shows the signed-in identity and license from the session
// snapshot, without a network call.
func (a *App) Whoami() {
	snap := a.session.Snapshot()
	if snap.Loading {
		fmt.Fprintln(a.out, "Still resolving your session...")
		return
	}
	if snap.User == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}

	u := snap.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.FullName, u.Email)
	if u.License != nil {
		fmt.Fprintf(a.out, "Plan: %s (%s)\n", u.License.TierID, u.License.Status)
	}
}
