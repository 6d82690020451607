package core

import (
	"context"
	"fmt"

	"github.com/helioworks/fieldops/pkg/models"
)

// EmployeeRef is a read-only view of one roster entry, used to validate
// reassignment targets. The roster snapshot is fetched once per session and
// threaded through explicitly rather than held in process-wide state.
type EmployeeRef struct {
	ID   string
	Name string
	Role string
}

// ReassignmentRequester is the subset of the repository client the
// reassignment workflow needs.
type ReassignmentRequester interface {
	CreateReassignmentRequest(ctx context.Context, taskID, fromUser, toUser string) (*MutationResult, error)
}

// Reassigner runs the two-step reassignment workflow. Reassignment never
// mutates the task's assignee directly: it creates a brand-new approval task
// that another workflow consumes. The approval step is business policy.
type Reassigner struct {
	svc    ReassignmentRequester
	roster []EmployeeRef
	toasts ToastSink
	events EventLogger
}

// NewReassigner creates a Reassigner validating targets against the given
// roster snapshot. events may be nil.
func NewReassigner(svc ReassignmentRequester, roster []EmployeeRef, toasts ToastSink, events EventLogger) *Reassigner {
	return &Reassigner{svc: svc, roster: roster, toasts: toasts, events: events}
}

// lookup finds a roster entry by employee ID.
func (r *Reassigner) lookup(employeeID string) *EmployeeRef {
	for i := range r.roster {
		if r.roster[i].ID == employeeID {
			return &r.roster[i]
		}
	}
	return nil
}

// Request validates the reassignment and creates the approval task. The
// original task is left untouched; the caller's board will pick up the new
// approval task on its next load.
func (r *Reassigner) Request(ctx context.Context, task *models.Task, fromUser, toUser string) (*MutationResult, error) {
	if toUser == fromUser {
		reason := "tasks cannot be reassigned to their current assignee"
		r.toasts.Notify(reason, ToastError, toastShort)
		return nil, &ValidationError{Reason: reason}
	}
	target := r.lookup(toUser)
	if target == nil {
		reason := fmt.Sprintf("employee %q is not on the roster", toUser)
		r.toasts.Notify(reason, ToastError, toastShort)
		return nil, &ValidationError{Reason: reason}
	}

	result, err := r.svc.CreateReassignmentRequest(ctx, task.ID, fromUser, toUser)
	if err != nil {
		r.toasts.Notify(remoteMessage(err), ToastError, toastLong)
		return nil, fmt.Errorf("requesting reassignment of %s: %w", task.ID, err)
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "The server rejected the reassignment request"
		}
		r.toasts.Notify(msg, ToastError, toastLong)
		return result, fmt.Errorf("requesting reassignment of %s: %s", task.ID, msg)
	}

	r.toasts.Notify(fmt.Sprintf("Reassignment of %s to %s sent for approval", task.Reference, target.Name), ToastSuccess, toastShort)
	if r.events != nil {
		_ = r.events.LogEvent("reassignment.requested", map[string]any{
			"task_id": task.ID,
			"from":    fromUser,
			"to":      toUser,
		})
	}

	return result, nil
}
