package models

import "time"

// Todo is a single task record owned by exactly one user. The owner is set at
// creation and never reassigned; CompletedAt stays nil until the item is
// completed and is never cleared afterwards.
type Todo struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Memo        string     `json:"memo,omitempty"`
	Important   bool       `json:"important"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UserID      int        `json:"-"`
}

// Completed reports whether the item has a completion timestamp.
func (t Todo) Completed() bool { return t.CompletedAt != nil }
