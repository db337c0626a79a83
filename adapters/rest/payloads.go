package rest

import "time"

type CreateCategoryIn struct {
	Name string `json:"name"`
}

type CreateTaskIn struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	ReminderEnabled *bool      `json:"reminder_enabled,omitempty"` // default true
}

type PatchTaskIn struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Category        *string    `json:"category,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	ClearDueDate    bool       `json:"clear_due_date,omitempty"`
	Completed       *bool      `json:"completed,omitempty"`
	ReminderEnabled *bool      `json:"reminder_enabled,omitempty"`
}
