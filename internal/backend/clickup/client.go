// Package clickup implements the service.Service interface against the
// ClickUp v2 REST API.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"cuimport/internal/config"
	"cuimport/internal/service"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.clickup.com/api/v2"

	// APITimeout is the timeout for one API call.
	APITimeout = 30 * time.Second

	// errBodyLimit caps how much of an error response body is carried
	// into error messages.
	errBodyLimit = 512
)

// Client implements service.Service using the ClickUp REST API.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a ClickUp client. The API token is injected into every
// request through an oauth2 static token source.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, &config.Error{Message: "API token is required"}
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
	httpClient := oauth2.NewClient(ctx, tokenSource)

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(base, "/"),
	}, nil
}

// CurrentUser returns the identity the token authenticates as.
func (c *Client) CurrentUser(ctx context.Context) (service.User, error) {
	var body struct {
		User service.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", nil, &body); err != nil {
		return service.User{}, err
	}
	return body.User, nil
}

// GetList looks up a list by ID and returns its display name.
func (c *Client) GetList(ctx context.Context, listID string) (service.TaskList, error) {
	var list service.TaskList
	if err := c.do(ctx, http.MethodGet, "/list/"+listID, nil, &list); err != nil {
		return service.TaskList{}, err
	}
	return list, nil
}

// CreateTask creates one task under the given list.
func (c *Client) CreateTask(ctx context.Context, listID string, payload service.TaskPayload) (service.CreatedTask, error) {
	var created service.CreatedTask
	if err := c.do(ctx, http.MethodPost, "/list/"+listID+"/task", payload, &created); err != nil {
		return service.CreatedTask{}, err
	}
	return created, nil
}

// do issues one request and decodes the JSON response into out.
// Non-2xx statuses map to the error taxonomy: 401 auth, 404 not found,
// anything else a generic API error.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &service.APIError{Message: "encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &service.APIError{Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &service.APIError{Message: fmt.Sprintf("request %s: %v", path, err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &service.APIError{Message: fmt.Sprintf("decode response from %s", path), Err: err}
		}
	}
	return nil
}

func statusError(resp *http.Response, path string) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &service.AuthError{Message: "invalid API token"}
	case http.StatusNotFound:
		return &service.NotFoundError{Resource: path}
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
	return &service.APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(snippet)),
	}
}
