package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NoteService runs note operations on behalf of an already authenticated
// user. Every store call is scoped to that user's id.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "notes"),
	}
}

func (s *NoteService) Create(ctx context.Context, userID, title, content string) (*models.Note, error) {
	note, err := s.repomanager.Notes(s.db).Create(ctx, &models.Note{UserID: userID, Title: title, Content: content})
	if err != nil {
		return nil, s.internal(ctx, "create note", err)
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	notes, err := s.repomanager.Notes(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "list notes", err)
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	return notes, nil
}

func (s *NoteService) Update(ctx context.Context, userID, noteID string, patch models.NotePatch) (*models.Note, error) {
	id, ok := canonicalID(noteID)
	if !ok {
		return nil, errInvalidNoteID
	}
	if patch.IsEmpty() {
		return nil, errEmptyPatch
	}

	note, err := s.repomanager.Notes(s.db).Update(ctx, id, userID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errNoteNotFound
		}
		return nil, s.internal(ctx, "update note", err)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	id, ok := canonicalID(noteID)
	if !ok {
		return errInvalidNoteID
	}

	n, err := s.repomanager.Notes(s.db).Delete(ctx, id, userID)
	if err != nil {
		return s.internal(ctx, "delete note", err)
	}
	if n == 0 {
		return errNoteNotFound
	}
	return nil
}

func (s *NoteService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	return common.ErrorInternal
}

// canonicalID parses any spelling uuid.Parse accepts and returns the
// lowercase hyphenated form the store keeps.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
