package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrMalformedResponse = errors.New("malformed response")
)

// Failure is a server-reported failure.
type Failure struct {
	Status  int
	Message string
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return fmt.Sprintf("request failed with status %d", f.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", f.Status, f.Message)
}

// Unwrap lets errors.Is match the sentinel for the status class.
func (f *Failure) Unwrap() error {
	switch f.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Message returns the server-supplied message carried by err, or fallback.
func Message(err error, fallback string) string {
	var f *Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	return fallback
}
