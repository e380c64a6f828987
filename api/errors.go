package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies the statuses the app routes on: 401 forces a trip back to
// login, 403/404 send the user to a safe parent view, everything else is
// shown as-is.
type Kind int

const (
	KindOther Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// Error is a non-2xx response from the backend.
type Error struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// KindOf extracts the Kind from any error chain. Network failures and plain
// errors report KindOther.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindOther
}

// UserMessage returns the backend's message when there is one, otherwise the
// given fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindOther
	}
}
