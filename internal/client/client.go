// Package client talks to the portfolio REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	// RetryAfter is set when the server locked the client out.
	RetryAfter time.Duration
	// RemainingAttempts is set on a rejected login.
	RemainingAttempts *int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client is a REST client for one portfolio server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as the admin bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the admin token used for later requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current admin token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	var out struct {
		Projects []project.Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*project.Project, error) {
	var out struct {
		Project *project.Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

// CreateProject posts proj; any ID it carries is ignored by the server.
func (c *Client) CreateProject(ctx context.Context, proj project.Project) (*project.Project, error) {
	var out struct {
		Project *project.Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/projects", proj, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (c *Client) ReplaceProject(ctx context.Context, proj project.Project) (*project.Project, error) {
	var out struct {
		Project *project.Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(proj.ID), proj, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListPresentations(ctx context.Context) ([]presentation.Presentation, error) {
	var out struct {
		Presentations []presentation.Presentation `json:"presentations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/presentations", nil, &out); err != nil {
		return nil, err
	}
	return out.Presentations, nil
}

func (c *Client) CreatePresentation(ctx context.Context, pres presentation.Presentation) (*presentation.Presentation, error) {
	var out struct {
		Presentation *presentation.Presentation `json:"presentation"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/presentations", pres, &out); err != nil {
		return nil, err
	}
	return out.Presentation, nil
}

func (c *Client) ReplacePresentation(ctx context.Context, pres presentation.Presentation) (*presentation.Presentation, error) {
	var out struct {
		Presentation *presentation.Presentation `json:"presentation"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/presentations/"+url.PathEscape(pres.ID), pres, &out); err != nil {
		return nil, err
	}
	return out.Presentation, nil
}

func (c *Client) DeletePresentation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/presentations/"+url.PathEscape(id), nil, nil)
}

// Login exchanges the admin password for a token and keeps it on the client.
func (c *Client) Login(ctx context.Context, password string) (string, time.Time, error) {
	var out struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", map[string]string{"password": password}, &out); err != nil {
		return "", time.Time{}, err
	}
	c.token = out.Token
	return out.Token, out.ExpiresAt, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) RecentActivity(ctx context.Context, limit int) ([]activity.ActivityEntry, error) {
	path := "/api/admin/activity"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var out struct {
		Activity []activity.ActivityEntry `json:"activity"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Activity, nil
}

type errorBody struct {
	Error             string `json:"error"`
	RemainingAttempts *int   `json:"remainingAttempts"`
	RetryAfterSeconds int    `json:"retryAfterSeconds"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Error != "" {
				apiErr.Message = eb.Error
			}
			apiErr.RemainingAttempts = eb.RemainingAttempts
			apiErr.RetryAfter = time.Duration(eb.RetryAfterSeconds) * time.Second
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
