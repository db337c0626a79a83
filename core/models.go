package core

import "time"

type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ReminderEnabled bool       `json:"reminder_enabled"`
}

// DefaultCategories seeds the category set on first run.
var DefaultCategories = []string{"Personal", "Work", "Shopping", "Health"}

// ReminderPayload is what the reminder service presents when a trigger fires.
type ReminderPayload struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
