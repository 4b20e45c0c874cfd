package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/minired/internal/client/ui"
)

// getText, getPassword and getMultiline are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getText      = GetText
	getPassword  = GetPassword
	getMultiline = GetMultiline
)

const minPasswordLength = 6

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
)

// Login prompts for credentials and hands them to the session gateway.
func (a *App) Login(ctx context.Context) error {
	username, err := getText(a.rl, "Username")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if err := a.sess.Login(ctx, username, password); err != nil {
		return err
	}

	a.println(ui.Success("Welcome back, " + a.sess.Snapshot().User.DisplayName() + "!"))
	return nil
}

// Register prompts for the sign-up form. The password is asked twice and
// must have at least six characters; bio is optional.
func (a *App) Register(ctx context.Context) error {
	username, err := getText(a.rl, "Username")
	if err != nil {
		return err
	}
	email, err := getText(a.rl, "Email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return errPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return errPasswordTooShort
	}
	bio, err := getText(a.rl, "Bio (optional)")
	if err != nil {
		return err
	}

	if err := a.sess.Register(ctx, username, email, password, bio); err != nil {
		return err
	}

	a.println(ui.Success("Account created. Welcome, " + a.sess.Snapshot().User.DisplayName() + "!"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.userLogout.Store(true)
	defer a.userLogout.Store(false)

	a.sess.Logout(ctx)
	a.println(ui.Success("Logged out."))
	return nil
}
