package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call the way the screens react to it.
type Kind int

const (
	// KindUnauthorized is a 401: the session is gone, the user re-logs in.
	KindUnauthorized Kind = iota
	// KindRejected is a non-401 4xx carrying a server message to show verbatim.
	KindRejected
	// KindFault is any other non-2xx without a usable message.
	KindFault
	// KindNetwork means the request produced no response at all.
	KindNetwork
)

// Sentinel targets for errors.Is checks at the screen level.
var (
	ErrUnauthorized = errors.New("session expired")
	ErrNoSession    = errors.New("no session")
	ErrNetwork      = errors.New("network unreachable")
)

// Error is the typed failure of an API call.
type Error struct {
	Kind    Kind
	Status  int
	Message string // server-provided message, verbatim, when present
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.Status)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrNetwork:
		return e.Kind == KindNetwork
	}
	return false
}

// ServerMessage extracts the verbatim server message from err, if any.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindRejected {
		return apiErr.Message
	}
	return ""
}
