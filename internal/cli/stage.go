package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/helioworks/fieldops/internal/core"
	"github.com/helioworks/fieldops/internal/observability"
	"github.com/helioworks/fieldops/pkg/models"
)

// eventForStage builds the event-log entry for a confirmed stage submission.
func eventForStage(sub core.StageSubmission) observability.Event {
	return observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    "stage.submitted",
		Message: "stage.submitted",
		Data: map[string]any{
			"task_id":   sub.TaskID,
			"handler":   sub.HandlerID,
			"documents": len(sub.Documents),
		},
	}
}

// resolveStage loads the board, looks up the task, and resolves its stage
// handler and customer snapshot. Shared by every stage submission command.
func resolveStage(ctx context.Context, taskID string) (*models.Task, core.Descriptor, core.StageHandler, *models.CustomerSnapshot, error) {
	if Board == nil || Registry == nil || Handlers == nil {
		return nil, core.Descriptor{}, nil, nil, fmt.Errorf("console not initialized")
	}

	if err := Board.LoadTasks(ctx); err != nil {
		return nil, core.Descriptor{}, nil, nil, err
	}

	task, err := Board.Get(taskID)
	if err != nil {
		return nil, core.Descriptor{}, nil, nil, err
	}

	desc, handler := Handlers.Resolve(Registry, task.WorkType)

	var snap *models.CustomerSnapshot
	if task.CustomerID != "" && Client != nil {
		snap, err = Client.GetCustomerSnapshot(ctx, task.CustomerID)
		if err != nil {
			return nil, core.Descriptor{}, nil, nil, fmt.Errorf("loading customer details: %w", err)
		}
	}

	return task, desc, handler, snap, nil
}

// submitStage runs a handler submission and surfaces the outcome as a toast.
func submitStage(ctx context.Context, desc core.Descriptor, handler core.StageHandler, snap *models.CustomerSnapshot, sub core.StageSubmission, successMsg string) error {
	result, err := handler.Submit(ctx, desc, snap, sub)
	if err != nil {
		if Notifier != nil {
			Notifier.Notify(err.Error(), core.ToastError, 5*time.Second)
		}
		return err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "The server rejected the submission"
		}
		if Notifier != nil {
			Notifier.Notify(msg, core.ToastError, 5*time.Second)
		}
		return fmt.Errorf("submitting stage for %s: %s", sub.TaskID, msg)
	}

	if Notifier != nil {
		Notifier.Notify(successMsg, core.ToastSuccess, 3*time.Second)
	}
	if EventLog != nil {
		_ = EventLog.Write(eventForStage(sub))
	}
	return nil
}
