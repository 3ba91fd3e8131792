package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mindfulhq/mindful/internal/common"
)

// Users lists all accounts. Admin only.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Println("Admin only")
		return nil
	}

	users, err := a.engine.GetUsers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, u := range users {
		fmt.Printf("%s  %s (%s)\n", u.ID, u.Username, u.Role)
	}
	return nil
}

// DeleteUser removes an account and all of its reminders. Admin only.
// The root admin account cannot be removed.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Println("Admin only")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	if id == common.AdminID {
		fmt.Println("Root admin locked")
		return common.ErrForbidden
	}

	if err := a.engine.DeleteUser(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Removed")
	return nil
}
