package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// maxBodyBytes caps request bodies; notes are plain text.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError maps service errors to a status code and a client-safe detail.
// Anything not recognised becomes a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	switch {
	case errors.Is(err, common.ErrorBadRequest), errors.Is(err, common.ErrorAlreadyExists):
		status, detail = http.StatusBadRequest, "Bad request"
	case errors.Is(err, common.ErrorUnauthorized):
		status, detail = http.StatusUnauthorized, "Could not validate credentials"
		w.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, common.ErrorNotFound):
		status, detail = http.StatusNotFound, "Not found"
	}

	if status != http.StatusInternalServerError {
		if d, ok := common.Detail(err); ok {
			detail = d
		}
	}

	writeDetail(w, status, detail)
}

var errInvalidBody = common.WithDetail(common.ErrorBadRequest, "Invalid request body")

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errInvalidBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}
