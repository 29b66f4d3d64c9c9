package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) setToken(t string) {
	c.mu.Lock()
	c.accessToken = t
	c.mu.Unlock()
}

func (c *HTTPClient) LoggedIn() bool { return c.token() != "" }

func (c *HTTPClient) Logout() { c.setToken("") }

// do sends a JSON request and decodes a JSON response into out (if non-nil).
// Non-2xx statuses are returned as sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, auth bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		tok := c.token()
		if tok == "" {
			return fmt.Errorf("%w: not logged in", ErrUnauthorized)
		}
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapError(resp *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	detail := body.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = ErrConflict
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(detail), "already exists"):
		sentinel = ErrConflict
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		sentinel = ErrBadRequest
	default:
		sentinel = ErrUnavailable
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil, false)
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) error {
	in := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/signup", in, nil, false)
}

// Login exchanges credentials for an access token and keeps it for later
// calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out, false); err != nil {
		return err
	}
	if out.AccessToken == "" || !strings.EqualFold(out.TokenType, common.TokenTypeBearer) {
		return fmt.Errorf("unexpected token response")
	}
	c.setToken(out.AccessToken)
	return nil
}

func (c *HTTPClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	var out []models.Note
	if err := c.do(ctx, http.MethodGet, "/notes/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	var out models.Note
	in := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPost, "/notes/", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote sends only the non-nil fields.
func (c *HTTPClient) UpdateNote(ctx context.Context, id string, title, content *string) (*models.Note, error) {
	in := map[string]string{}
	if title != nil {
		in["title"] = *title
	}
	if content != nil {
		in["content"] = *content
	}

	var out models.Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil, true)
}
