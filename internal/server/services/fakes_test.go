package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
)

// fakeRepoManager hands out the same fake repositories regardless of the
// DBTX it is given.
type fakeRepoManager struct {
	users *fakeUsersRepo
	notes *fakeNotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Notes(dbx.DBTX) notes.Repository              { return m.notes }

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "u-1"
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getOut, f.getErr
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeNotesRepo struct {
	err     error
	deleted int64
	calls   int
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeNotesRepo) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeNotesRepo) Update(ctx context.Context, id, userID string, p models.NotePatch) (*models.Note, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	f.calls++
	return f.deleted, f.err
}
