// Package core contains the business logic for the field-operations console:
// the task status machine, the work-type registry, the board orchestrator,
// stage handlers, and the reassignment workflow.
package core

import (
	"fmt"

	"github.com/helioworks/fieldops/pkg/models"
)

// statusOrder is the fixed forward progression of a task's lifecycle.
var statusOrder = []models.TaskStatus{
	models.StatusPending,
	models.StatusInProgress,
	models.StatusCompleted,
}

// statusLabels maps statuses to the human-readable names shown in
// notifications and board headings.
var statusLabels = map[models.TaskStatus]string{
	models.StatusPending:    "Pending",
	models.StatusInProgress: "In Progress",
	models.StatusCompleted:  "Completed",
}

// statusIndex returns the position of status in the lifecycle order, or -1
// if the status is not a recognized lifecycle state.
func statusIndex(status models.TaskStatus) int {
	for i, s := range statusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// CanTransition reports whether a task may move from current to next.
// A transition is legal only when the statuses are equal (idempotent no-op)
// or next is the immediate successor of current. Backward moves and
// multi-step jumps are illegal; completed is terminal.
func CanTransition(current, next models.TaskStatus) bool {
	if current == next {
		return true
	}
	ci := statusIndex(current)
	ni := statusIndex(next)
	if ci < 0 || ni < 0 {
		return false
	}
	return ni == ci+1
}

// NextAllowed returns the statuses a task may legally move to from current,
// excluding the no-op of staying put. It returns an empty slice for
// completed tasks and for unrecognized statuses.
func NextAllowed(current models.TaskStatus) []models.TaskStatus {
	ci := statusIndex(current)
	if ci < 0 || ci == len(statusOrder)-1 {
		return nil
	}
	return []models.TaskStatus{statusOrder[ci+1]}
}

// StatusLabel returns the human-readable name for a status. Unrecognized
// statuses are returned unchanged so callers always have something to show.
func StatusLabel(status models.TaskStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// ExplainRejection produces the user-facing reason why a transition from
// current to next is not allowed. It is pure and defined for every illegal
// pair; calling it for a legal pair returns an empty string.
func ExplainRejection(current, next models.TaskStatus) string {
	if CanTransition(current, next) {
		return ""
	}

	ci := statusIndex(current)
	ni := statusIndex(next)

	switch {
	case ni < 0:
		return fmt.Sprintf("%q is not a valid task status", next)
	case ci < 0:
		return fmt.Sprintf("task is in unrecognized status %q", current)
	case current == models.StatusCompleted:
		return "completed tasks are final and cannot change status"
	case ni < ci:
		return fmt.Sprintf("tasks cannot move backward from %s to %s; work only flows Pending to In Progress to Completed",
			StatusLabel(current), StatusLabel(next))
	default:
		return fmt.Sprintf("tasks cannot skip from %s to %s; move to %s first",
			StatusLabel(current), StatusLabel(next), StatusLabel(statusOrder[ci+1]))
	}
}
