package services

import "github.com/dmitrijs2005/notekeeper/internal/common"

// Client-facing failures.
var (
	errEmailExists        = common.WithDetail(common.ErrorAlreadyExists, "Email already exists")
	errInvalidCredentials = common.WithDetail(common.ErrorUnauthorized, "Invalid credentials")
	errInvalidToken       = common.WithDetail(common.ErrorUnauthorized, "Could not validate credentials")
	errUserNotFound       = common.WithDetail(common.ErrorNotFound, "User not found")

	errInvalidNoteID = common.WithDetail(common.ErrorBadRequest, "Invalid note ID")
	errEmptyPatch    = common.WithDetail(common.ErrorBadRequest, "No update data provided")
	errNoteNotFound  = common.WithDetail(common.ErrorNotFound, "Note not found")
)
