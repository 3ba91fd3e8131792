package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mindfulhq/mindful/internal/common"
	"github.com/mindfulhq/mindful/internal/models"
)

// List prints the current user's reminders, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	reminders, err := a.engine.GetReminders(ctx, a.user.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(reminders) == 0 {
		printlnFn("No reminders yet")
		return nil
	}

	models.SortRemindersByCreatedAt(reminders)
	for _, r := range reminders {
		printlnFn(formatReminder(r))
	}
	return nil
}

// Add prompts for the reminder fields and stores the new record. Only the
// title is mandatory; everything left blank gets a creation-time default.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "Enter due date (optional)", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, "Enter priority LOW/MEDIUM/HIGH/URGENT (optional)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category Work/Personal/Health/Finance/Others (optional)", os.Stdout)
	if err != nil {
		return err
	}

	r := models.Reminder{
		UserID:      a.user.ID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    models.Priority(priority),
		Category:    models.Category(category),
	}

	if err := a.engine.AddReminder(ctx, r); err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Println(err.Error())
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Toggle flips the completed state of a reminder selected by id.
func (a *App) Toggle(ctx context.Context) error {
	r, err := a.pickReminder(ctx)
	if err != nil || r == nil {
		return err
	}

	r.Completed = !r.Completed
	if err := a.engine.UpdateReminder(ctx, *r); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println(formatReminder(*r))
	return nil
}

// Edit re-prompts the mutable fields of a reminder selected by id. Fields
// left blank keep their current value.
func (a *App) Edit(ctx context.Context) error {
	r, err := a.pickReminder(ctx)
	if err != nil || r == nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", r.Title), os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, fmt.Sprintf("Enter description [%s]", r.Description), os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, fmt.Sprintf("Enter due date [%s]", r.DueDate), os.Stdout)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, fmt.Sprintf("Enter priority [%s]", r.Priority), os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, fmt.Sprintf("Enter category [%s]", r.Category), os.Stdout)
	if err != nil {
		return err
	}

	if title != "" {
		r.Title = title
	}
	if description != "" {
		r.Description = description
	}
	if dueDate != "" {
		r.DueDate = dueDate
	}
	if priority != "" {
		r.Priority = models.Priority(priority)
	}
	if category != "" {
		r.Category = models.Category(category)
	}

	if err := a.engine.UpdateReminder(ctx, *r); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Remove deletes a reminder selected by id.
func (a *App) Remove(ctx context.Context) error {
	r, err := a.pickReminder(ctx)
	if err != nil || r == nil {
		return err
	}

	if err := a.engine.DeleteReminder(ctx, r.ID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Removed")
	return nil
}

// pickReminder prompts for a reminder id and resolves it within the current
// user's records. A nil reminder with nil error means the id did not match;
// the user has already been told.
func (a *App) pickReminder(ctx context.Context) (*models.Reminder, error) {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil, nil
	}

	id, err := getSimpleText(a.reader, "Enter reminder id", os.Stdout)
	if err != nil {
		return nil, err
	}

	reminders, err := a.engine.GetReminders(ctx, a.user.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, err
	}

	for i := range reminders {
		if reminders[i].ID == id {
			return &reminders[i], nil
		}
	}

	fmt.Println("No reminder with id", id)
	return nil, nil
}

func formatReminder(r models.Reminder) string {
	status := "[ ]"
	if bool(r.Completed) {
		status = "[x]"
	}
	return fmt.Sprintf("%s %s  %s (%s, %s, due %s)", status, r.ID, r.Title, r.Priority, r.Category, r.DueDate)
}
