package supabase

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AdminUserAttributes is the body of POST /auth/v1/admin/users.
type AdminUserAttributes struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
	UserMetadata any    `json:"user_metadata,omitempty"`
}

type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Role             string         `json:"role"`
	UserMetadata     map[string]any `json:"user_metadata"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at"`
	CreatedAt        *time.Time     `json:"created_at"`
}

// APIError is the error indicator returned by the backend for a non-2xx
// response. Message carries the human-readable text reported by PostgREST or
// GoTrue.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("supabase: request failed with status %d", e.StatusCode)
}

// errorBody covers both the PostgREST {code,message,details,hint} shape and
// the GoTrue {code|error_code, msg|message|error_description} shapes.
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Details          string          `json:"details"`
	Hint             string          `json:"hint"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	apiErr.Code = eb.ErrorCode
	if apiErr.Code == "" && len(eb.Code) > 0 && string(eb.Code) != "null" {
		apiErr.Code = strings.Trim(string(eb.Code), `"`)
	}
	apiErr.Details = eb.Details
	apiErr.Hint = eb.Hint
	for _, msg := range []string{eb.Message, eb.Msg, eb.ErrorDescription, eb.Error} {
		if msg != "" {
			apiErr.Message = msg
			break
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
