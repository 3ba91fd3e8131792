package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Priority of a reminder.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Category of a reminder.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryOthers   Category = "Others"
)

// Reminder is a task record owned by a single user.
//
// DueDate is a date-time string (RFC 3339 when generated here; free-form
// strings from other clients are carried through untouched). CreatedAt is
// Unix milliseconds and serves as the default sort key, newest first.
type Reminder struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
	Completed   IntBool  `json:"completed"`
	CreatedAt   int64    `json:"createdAt"`
}

// Normalize fills creation-time defaults for fields the caller left empty:
// id, due date (now), priority (MEDIUM), category (Personal) and createdAt.
func (r *Reminder) Normalize(now time.Time) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.DueDate == "" {
		r.DueDate = now.Format(time.RFC3339)
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.Category == "" {
		r.Category = CategoryPersonal
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = now.UnixMilli()
	}
}

// SortRemindersByCreatedAt orders reminders newest first. The sort is stable
// so records sharing a timestamp keep their merge order.
func SortRemindersByCreatedAt(reminders []Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].CreatedAt > reminders[j].CreatedAt
	})
}
