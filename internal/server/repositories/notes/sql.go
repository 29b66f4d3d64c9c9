// Package notes provides the SQL-backed note store.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/google/uuid"
)

// SQLRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db    dbx.DBTX
	newID func() string
	now   func() time.Time
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{
		db:    db,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Create assigns id and timestamps and inserts the note.
func (r *SQLRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	n := *note
	n.ID = r.newID()
	n.CreatedAt = r.now()
	n.UpdatedAt = n.CreatedAt

	_, err := r.db.ExecContext(ctx, query, n.ID, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &n, nil
}

// ListByUser returns the notes owned by userID, oldest first.
func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at FROM notes
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Note, 0)
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update applies the non-nil fields of patch to the note (id, userID) in a
// single statement and returns the stored result. common.ErrorNotFound is
// returned when no such note is owned by userID.
func (r *SQLRepository) Update(ctx context.Context, id, userID string, patch models.NotePatch) (*models.Note, error) {
	query := `
		UPDATE notes SET
			title = COALESCE($3, title),
			content = COALESCE($4, content),
			updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, content, created_at, updated_at
	`

	var item models.Note
	err := r.db.QueryRowContext(ctx, query, id, userID, nullable(patch.Title), nullable(patch.Content), r.now()).
		Scan(&item.ID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &item, nil
}

// Delete removes the note (id, userID) and reports how many rows went away.
func (r *SQLRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
