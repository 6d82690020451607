package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/helioworks/fieldops/pkg/models"
)

// ToastLevel classifies a user notification.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Default toast durations for the notification sink.
const (
	toastShort = 3 * time.Second
	toastLong  = 5 * time.Second
)

// ToastSink delivers fire-and-forget user notifications. Implementations
// live in the observability package; the board never consumes a return value.
type ToastSink interface {
	Notify(message string, level ToastLevel, duration time.Duration)
}

// EventLogger is the subset of the observability event log the board needs.
// Defining it here keeps core independent of the observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// MutationResult is the outcome of a remote mutation as reported by the
// repository client.
type MutationResult struct {
	Success bool
	Message string
}

// TaskService is the subset of the repository client the board needs.
type TaskService interface {
	ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error)
	UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) (*MutationResult, error)
}

// BoardView groups the current task set into the three lifecycle buckets.
// The buckets always partition the (filtered) task set exactly.
type BoardView struct {
	Pending    []*models.Task
	InProgress []*models.Task
	Completed  []*models.Task
}

// Board owns the authoritative in-memory task list for the session user and
// mediates every status change. Local state is only mutated after the
// corresponding remote call resolves; the board never shows unconfirmed
// status. A mutex guards the list so CLI and TUI goroutines can share one
// board instance.
type Board struct {
	mu         sync.Mutex
	assigneeID string
	svc        TaskService
	toasts     ToastSink
	events     EventLogger

	tasks []*models.Task
	index map[string]*models.Task

	// inflight tracks task IDs with an outstanding status mutation so
	// overlapping requests for the same task are rejected.
	inflight map[string]bool

	// issuedSeq/appliedSeq fence overlapping LoadTasks calls: a slower
	// response that was issued before an already-applied one is discarded.
	issuedSeq  uint64
	appliedSeq uint64
}

// NewBoard creates a Board for the given assignee. toasts must not be nil;
// events may be nil to disable event logging.
func NewBoard(assigneeID string, svc TaskService, toasts ToastSink, events EventLogger) *Board {
	return &Board{
		assigneeID: assigneeID,
		svc:        svc,
		toasts:     toasts,
		events:     events,
		index:      make(map[string]*models.Task),
		inflight:   make(map[string]bool),
	}
}

// LoadTasks fetches the assignee's task list and replaces local state with
// the result. On failure the previous list is left intact and the error is
// surfaced as a notification. A stale response (superseded by a fetch that
// already applied) is discarded without touching state.
func (b *Board) LoadTasks(ctx context.Context) error {
	b.mu.Lock()
	b.issuedSeq++
	seq := b.issuedSeq
	b.mu.Unlock()

	fetched, err := b.svc.ListByAssignee(ctx, b.assigneeID)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.toasts.Notify(fmt.Sprintf("Could not load tasks: %s", remoteMessage(err)), ToastError, toastLong)
		return fmt.Errorf("loading tasks: %w", err)
	}

	if seq <= b.appliedSeq {
		// A newer fetch already applied; this result is stale.
		return nil
	}
	b.appliedSeq = seq

	tasks := make([]*models.Task, len(fetched))
	index := make(map[string]*models.Task, len(fetched))
	for i := range fetched {
		t := fetched[i]
		tasks[i] = &t
		index[t.ID] = &t
	}
	b.tasks = tasks
	b.index = index

	return nil
}

// RequestStatusChange mediates a status change for the given task. Illegal
// transitions and no-op changes short-circuit client-side with zero network
// calls. The local task is mutated only after the repository confirms; any
// failure leaves local state unchanged and surfaces the server's message.
func (b *Board) RequestStatusChange(ctx context.Context, taskID string, next models.TaskStatus) error {
	b.mu.Lock()

	task, ok := b.index[taskID]
	if !ok {
		b.mu.Unlock()
		return &TaskNotFoundError{TaskID: taskID}
	}

	if b.inflight[taskID] {
		b.mu.Unlock()
		err := &TaskBusyError{TaskID: taskID}
		b.toasts.Notify(err.Error(), ToastError, toastShort)
		return err
	}

	if !CanTransition(task.Status, next) {
		reason := ExplainRejection(task.Status, next)
		b.mu.Unlock()
		b.toasts.Notify(reason, ToastError, toastLong)
		return &ValidationError{Reason: reason}
	}

	if task.Status == next {
		b.mu.Unlock()
		return nil
	}

	b.inflight[taskID] = true
	reference := task.Reference
	previous := task.Status
	b.mu.Unlock()

	result, err := b.svc.UpdateStatus(ctx, taskID, next)

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inflight, taskID)

	if err != nil {
		b.toasts.Notify(remoteMessage(err), ToastError, toastLong)
		return fmt.Errorf("updating status of %s: %w", taskID, err)
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "The server rejected the status change"
		}
		b.toasts.Notify(msg, ToastError, toastLong)
		return fmt.Errorf("updating status of %s: %s", taskID, msg)
	}

	// The list may have been replaced by a concurrent fetch; re-resolve.
	task, ok = b.index[taskID]
	if ok {
		task.Status = next
		b.moveToEnd(taskID)
	}

	b.toasts.Notify(fmt.Sprintf("%s moved to %s", reference, StatusLabel(next)), ToastSuccess, toastShort)
	if b.events != nil {
		_ = b.events.LogEvent("task.status_changed", map[string]any{
			"task_id": taskID,
			"from":    string(previous),
			"to":      string(next),
		})
	}

	return nil
}

// moveToEnd reorders the task to the end of the list so it appears at the
// visual end of its new bucket. Relative order of all other tasks is kept.
func (b *Board) moveToEnd(taskID string) {
	for i, t := range b.tasks {
		if t.ID == taskID {
			b.tasks = append(append(b.tasks[:i:i], b.tasks[i+1:]...), t)
			return
		}
	}
}

// Buckets derives the three status buckets from the current list, narrowed
// by an optional work-type filter (empty filter means all work types).
// Within a bucket, tasks keep stable insertion order.
func (b *Board) Buckets(workTypeFilter models.WorkType) BoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	var view BoardView
	for _, t := range b.tasks {
		if workTypeFilter != "" && t.WorkType != workTypeFilter {
			continue
		}
		switch t.Status {
		case models.StatusInProgress:
			view.InProgress = append(view.InProgress, t)
		case models.StatusCompleted:
			view.Completed = append(view.Completed, t)
		default:
			// Unrecognized statuses surface at the start of the flow so the
			// partition stays exact.
			view.Pending = append(view.Pending, t)
		}
	}
	return view
}

// Get returns the task with the given ID from local state.
func (b *Board) Get(taskID string) (*models.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	task, ok := b.index[taskID]
	if !ok {
		return nil, &TaskNotFoundError{TaskID: taskID}
	}
	return task, nil
}

// Tasks returns the current task list in insertion order.
func (b *Board) Tasks() []*models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*models.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// remoteMessage extracts a user-facing message from a repository error,
// falling back to a generic network message.
func remoteMessage(err error) string {
	type messenger interface{ UserMessage() string }
	var m messenger
	if errors.As(err, &m) {
		return m.UserMessage()
	}
	return "A network error occurred; please try again"
}
