package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mindfulhq/mindful/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// Authentication is resolved by the sync engine: against the backend when it
// is reachable, against the local mirror otherwise. On success the resulting
// identity becomes the current user and is persisted as the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.engine.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid credentials")
			return err
		}
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.user = user
	log.Printf("Login successfull")
	return nil
}

// Signup prompts for a username and attempts to create a new account.
// On success the new identity is logged in immediately.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.engine.Signup(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			fmt.Println("Username already taken")
			return err
		}
		if errors.Is(err, common.ErrValidation) {
			fmt.Println(err.Error())
			return err
		}
		log.Printf("Signup unsuccessfull: %s", err.Error())
		return err
	}

	a.user = user
	fmt.Println("Success!")
	return nil
}

// Logout clears the persisted session and the in-memory identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.engine.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	return nil
}
