// Package gateway wraps network calls to the authoritative backend,
// normalizing every failure into a single fail-fast signal. Callers never
// distinguish transport failures from server-side errors: both mean
// "remote is not reachable right now". An implementer wanting a finer
// retry policy would split ErrRemoteUnavailable into distinct
// timeout/server/network variants here, at the boundary.
package gateway

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

	"github.com/mindfulhq/mindful/internal/models"
)

// ErrRemoteUnavailable is returned for any network error or non-2xx
// response, carrying the best available error text.
var ErrRemoteUnavailable = errors.New("remote unavailable")

// Client is an HTTP/JSON client for the backend record store. It performs
// no retries and imposes no timeout of its own; cancellation comes from
// the caller's context, if any.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for a backend rooted at baseURL
// (e.g. "http://localhost:3000").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Users fetches the full user list.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts a user; the backend ignores ids it already holds.
func (c *Client) CreateUser(ctx context.Context, u models.User) error {
	return c.do(ctx, http.MethodPost, "/api/users", u, nil)
}

// DeleteUser deletes a user and, through the backend's referential
// integrity, every reminder owned by it. The root admin is rejected with
// a 403, which surfaces as ErrRemoteUnavailable like any other failure.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

// Reminders fetches the reminders owned by one user.
func (c *Client) Reminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	path := "/api/reminders?userId=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// AllReminders fetches every reminder in the authoritative store.
func (c *Client) AllReminders(ctx context.Context) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := c.do(ctx, http.MethodGet, "/api/reminders/all", nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// CreateReminder inserts a reminder.
func (c *Client) CreateReminder(ctx context.Context, r models.Reminder) error {
	return c.do(ctx, http.MethodPost, "/api/reminders", r, nil)
}

// UpdateReminder replaces the mutable fields of a reminder by id.
func (c *Client) UpdateReminder(ctx context.Context, r models.Reminder) error {
	return c.do(ctx, http.MethodPut, "/api/reminders/"+url.PathEscape(r.ID), r, nil)
}

// DeleteReminder deletes a reminder by id.
func (c *Client) DeleteReminder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reminders/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, errorText(resp, data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: invalid response body: %v", ErrRemoteUnavailable, err)
		}
	}
	return nil
}

// errorText extracts the most useful description from a failed response:
// the backend's {"error": ...} message when present, otherwise the raw
// body, otherwise the status line.
func errorText(resp *http.Response, body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return resp.Status
}
