package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the backend could not
	// be reached or did not produce a response.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized marks rejected or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks requests for resources the backend does not know.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response from the backend: the HTTP status plus the
// human-readable detail from the error payload, surfaced verbatim to the
// initiating view.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend error: status %d", e.Status)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.Status, e.Detail)
}

// Is lets callers classify backend errors with errors.Is against the
// package sentinels without inspecting status codes themselves.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}

// errorBody is the backend's error payload. Detail is usually a string but
// validation failures arrive as structured objects; both are kept readable.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (b errorBody) text() string {
	if len(b.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Detail, &s); err == nil {
		return s
	}
	return string(b.Detail)
}
