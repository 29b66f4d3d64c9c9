package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/client/config"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

type fakeClient struct {
	token string

	pingErr   error
	signupErr error
	loginErr  error
	listErr   error

	notes   []models.Note
	created models.Note
	updated struct {
		id             string
		title, content *string
	}
	deletedID string
	deleteErr error

	signupArgs []string
	loginArgs  []string
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Signup(_ context.Context, name, email, password string) error {
	f.signupArgs = []string{name, email, password}
	return f.signupErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) error {
	f.loginArgs = []string{email, password}
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = "tok"
	return nil
}

func (f *fakeClient) Logout()        { f.token = "" }
func (f *fakeClient) LoggedIn() bool { return f.token != "" }

func (f *fakeClient) ListNotes(context.Context) ([]models.Note, error) {
	return f.notes, f.listErr
}

func (f *fakeClient) CreateNote(_ context.Context, title, content string) (*models.Note, error) {
	f.created = models.Note{ID: "n-new", Title: title, Content: content}
	return &f.created, nil
}

func (f *fakeClient) UpdateNote(_ context.Context, id string, title, content *string) (*models.Note, error) {
	f.updated.id, f.updated.title, f.updated.content = id, title, content
	return &models.Note{ID: id}, nil
}

func (f *fakeClient) DeleteNote(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestApp(f *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return newApp(&config.Config{}, f, strings.NewReader(input), &out), &out
}

// stubInputs replaces the prompt helpers with ones returning canned answers
// in order: text answers for getSimpleText/getMultiline, pw for getPassword.
func stubInputs(t *testing.T, pw string, answers ...string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})

	next := func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = next
	getMultiline = next
	getPassword = func(io.Writer) (string, error) { return pw, nil }
}
