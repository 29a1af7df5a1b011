package supabase

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
)

const (
	restPath       = "/rest/v1"
	authPath       = "/auth/v1"
	clientInfo     = "crossbeam-seed/go"
	ProfilesTable  = "profiles"
	maxErrorBody   = 4096
	contentTypeApp = "application/json"
)

var (
	ErrMissingURL = errors.New("supabase: url is required")
	ErrInvalidURL = errors.New("supabase: url must be a valid HTTP or HTTPS URL")
	ErrMissingKey = errors.New("supabase: service role key is required")
)

// Client talks to the PostgREST and GoTrue admin endpoints of a Supabase
// project using the service role key. It keeps no session: there is no
// token refresh and nothing is persisted between calls.
type Client struct {
	APIKey     string
	APIBase    string
	HTTPClient *http.Client
}

func NewClient(projectURL, serviceRoleKey string) (*Client, error) {
	if projectURL == "" {
		return nil, ErrMissingURL
	}
	u, err := url.Parse(projectURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, projectURL)
	}
	if serviceRoleKey == "" {
		return nil, ErrMissingKey
	}
	return &Client{
		APIKey:     serviceRoleKey,
		APIBase:    strings.TrimRight(projectURL, "/"),
		HTTPClient: http.DefaultClient,
	}, nil
}

// InsertRows calls POST /rest/v1/{table} with rows encoded as a JSON array.
// The backend's default insert policy applies; no upsert is requested.
func (c *Client) InsertRows(ctx context.Context, table string, rows any) error {
	endpoint := fmt.Sprintf("%s%s/%s", c.APIBase, restPath, url.PathEscape(table))
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, rows)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// CreateUser calls POST /auth/v1/admin/users and returns the created account.
func (c *Client) CreateUser(ctx context.Context, attrs AdminUserAttributes) (*User, error) {
	endpoint := c.APIBase + authPath + "/admin/users"
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, attrs)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("CreateUser: failed to decode response for %s: %w", attrs.Email, err)
	}
	return &user, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, payload any) (*http.Request, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", contentTypeApp)
	req.Header.Set("Content-Type", contentTypeApp)
	req.Header.Set("X-Client-Info", clientInfo)
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, req.URL.Path, err)
	}
	return resp, nil
}
