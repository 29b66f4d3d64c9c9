// Package models holds the client-side view of API resources.
package models

import (
	"fmt"
	"time"
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// String renders the one-line summary used by the list command.
func (n Note) String() string {
	return fmt.Sprintf("%s  %s  (%s)", n.ID, n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
}
