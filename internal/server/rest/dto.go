package rest

import (
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// noteCreateRequest uses pointers so that a missing field can be told apart
// from an empty one.
type noteCreateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// noteUpdateRequest: absent and null fields are left unchanged.
type noteUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
