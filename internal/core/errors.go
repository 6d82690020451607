package core

import "fmt"

// ValidationError is a client-side rejection: an illegal status transition or
// a stage submission missing required fields or documents. Validation errors
// are resolved entirely locally and never cause a repository call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TaskNotFoundError indicates the task is absent from the board's local state.
type TaskNotFoundError struct {
	TaskID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %s not found on the board", e.TaskID)
}

// TaskBusyError indicates a status change for the task is already in flight.
// Overlapping requests are rejected, not queued.
type TaskBusyError struct {
	TaskID string
}

func (e *TaskBusyError) Error() string {
	return fmt.Sprintf("task %s already has a status change in progress", e.TaskID)
}
