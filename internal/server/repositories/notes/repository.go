package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// Repository is the note store. Every read and write is scoped to a user id.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Note, error)
	Update(ctx context.Context, id, userID string, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}
