package rest

import (
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msgResponse{Msg: "User created successfully"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	pair, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, TokenType: pair.TokenType})
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req noteCreateRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Title == nil || req.Content == nil {
		writeError(w, errInvalidBody)
		return
	}

	note, err := s.notes.Create(r.Context(), user.ID, *req.Title, *req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	notes, err := s.notes.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req noteUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := models.NotePatch{Title: req.Title, Content: req.Content}
	note, err := s.notes.Update(r.Context(), user.ID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	if err := s.notes.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}
