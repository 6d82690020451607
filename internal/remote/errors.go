package remote

import (
	"fmt"
	"strings"
)

// AuthError indicates a missing or expired credential. The console does not
// attempt silent refresh; the user must sign in again.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// UserMessage returns the notification text shown for this error.
func (e *AuthError) UserMessage() string {
	return "Your session has expired; please sign in again"
}

// NotFoundError indicates the task or customer no longer exists server-side.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found on the server", e.Resource, e.ID)
}

func (e *NotFoundError) UserMessage() string {
	return fmt.Sprintf("The %s no longer exists; reload the board", e.Resource)
}

// ConflictError indicates the server's authoritative state disagrees with the
// client's assumed prior state, typically because a concurrent editor raced
// ahead. The server's rejection is authoritative even when the local rule
// passed, and it is never silently retried.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting update: %s", e.Message)
}

func (e *ConflictError) UserMessage() string {
	if e.Message == "" {
		return "The task changed on the server; reload the board and try again"
	}
	return e.Message
}

// NetworkError indicates a transport failure or timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) UserMessage() string {
	return "A network error occurred; please try again"
}

// PartialFailureError indicates a multi-part stage submission in which the
// artifacts were stored but the metadata update failed. It is reported
// distinctly from total failure so the user retries only the failed part
// instead of re-uploading stored artifacts.
type PartialFailureError struct {
	Stored  []string
	Message string
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial stage submission failure: %s (already stored: %s)",
		e.Message, strings.Join(e.Stored, ", "))
}

func (e *PartialFailureError) UserMessage() string {
	return fmt.Sprintf("Documents were stored but the update did not complete (%s); retry without re-uploading", e.Message)
}
