package client

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error
	Signup(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout()
	LoggedIn() bool
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, title, content string) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, title, content *string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
