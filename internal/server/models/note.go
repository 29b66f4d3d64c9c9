package models

import "time"

type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotePatch holds the fields of an update. A nil field is left unchanged.
type NotePatch struct {
	Title   *string
	Content *string
}

func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
