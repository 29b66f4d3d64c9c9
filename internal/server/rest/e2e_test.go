package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/rest"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/dmitrijs2005/notekeeper/internal/server/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, rm := storetest.New(t)
	cfg := &config.Config{SecretKey: "e2e-secret", AccessTokenValidityDuration: time.Hour, BcryptCost: bcrypt.MinCost}

	us, err := services.NewUserService(db, rm, cfg, logging.Nop())
	require.NoError(t, err)
	ns := services.NewNoteService(db, rm, logging.Nop())

	srv := httptest.NewServer(rest.NewServer("", logging.Nop(), us, ns, []string{"*"}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any, out any) int {
	t.Helper()

	var rdr bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&rdr).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func signupAndLogin(t *testing.T, srv *httptest.Server, name, email, password string) string {
	t.Helper()
	status := call(t, srv, http.MethodPost, "/auth/signup", "",
		map[string]string{"name": name, "email": email, "password": password}, nil)
	require.Equal(t, http.StatusOK, status)

	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	status = call(t, srv, http.MethodPost, "/auth/login", "",
		map[string]string{"email": email, "password": password}, &tok)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
	return tok.AccessToken
}

func TestEndToEnd_NoteLifecycle(t *testing.T) {
	srv := startServer(t)
	token := signupAndLogin(t, srv, "T", "t@x.com", "pw123")

	var created note
	status := call(t, srv, http.MethodPost, "/notes/", token, map[string]string{"title": "A", "content": "B"}, &created)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "A", created.Title)

	var list []note
	status = call(t, srv, http.MethodGet, "/notes/", token, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	var ack map[string]string
	status = call(t, srv, http.MethodDelete, "/notes/"+created.ID, token, nil, &ack)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Note deleted successfully", ack["message"])

	list = nil
	status = call(t, srv, http.MethodGet, "/notes/", token, nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestEndToEnd_Isolation(t *testing.T) {
	srv := startServer(t)
	aliceTok := signupAndLogin(t, srv, "Alice", "alice@x.com", "pw-a")
	bobTok := signupAndLogin(t, srv, "Bob", "bob@x.com", "pw-b")

	var n note
	require.Equal(t, http.StatusOK,
		call(t, srv, http.MethodPost, "/notes/", aliceTok, map[string]string{"title": "a", "content": "private"}, &n))

	var bobList []note
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/notes/", bobTok, nil, &bobList))
	assert.Empty(t, bobList)

	var detail map[string]string
	status := call(t, srv, http.MethodPut, "/notes/"+n.ID, bobTok, map[string]string{"content": "pwned"}, &detail)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", detail["detail"])

	status = call(t, srv, http.MethodDelete, "/notes/"+n.ID, bobTok, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var aliceList []note
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/notes/", aliceTok, nil, &aliceList))
	require.Len(t, aliceList, 1)
	assert.Equal(t, "private", aliceList[0].Content)
}

func TestEndToEnd_Errors(t *testing.T) {
	srv := startServer(t)
	token := signupAndLogin(t, srv, "T", "t@x.com", "pw123")

	var detail map[string]string

	status := call(t, srv, http.MethodPost, "/auth/signup", "",
		map[string]string{"name": "T", "email": "t@x.com", "password": "x"}, &detail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already exists", detail["detail"])

	status = call(t, srv, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "t@x.com", "password": "wrong"}, &detail)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", detail["detail"])

	status = call(t, srv, http.MethodPut, "/notes/not-an-id", token, map[string]string{"title": "x"}, &detail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid note ID", detail["detail"])

	status = call(t, srv, http.MethodPut, "/notes/0b7e0b4c-5a4e-4d55-8c55-1f0a2c9d6e11", token, map[string]any{}, &detail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No update data provided", detail["detail"])

	status = call(t, srv, http.MethodPut, "/notes/0b7e0b4c-5a4e-4d55-8c55-1f0a2c9d6e11", token, map[string]string{"title": "x"}, &detail)
	assert.Equal(t, http.StatusNotFound, status)

	status = call(t, srv, http.MethodGet, "/notes/", "garbage", nil, &detail)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = call(t, srv, http.MethodGet, "/notes/", "", nil, &detail)
	assert.Equal(t, http.StatusUnauthorized, status)
}
