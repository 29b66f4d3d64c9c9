package rest

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if p := args.Get(0); p != nil {
		return p.(*services.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, header string) (*models.User, error) {
	args := m.Called(ctx, header)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) Create(ctx context.Context, userID, title, content string) (*models.Note, error) {
	args := m.Called(ctx, userID, title, content)
	if n := args.Get(0); n != nil {
		return n.(*models.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]*models.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) Update(ctx context.Context, userID, noteID string, patch models.NotePatch) (*models.Note, error) {
	args := m.Called(ctx, userID, noteID, patch)
	if n := args.Get(0); n != nil {
		return n.(*models.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}
