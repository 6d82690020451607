// Package internal provides the App struct that wires all components of the
// field-operations console together and initializes the CLI layer.
package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/helioworks/fieldops/internal/cli"
	"github.com/helioworks/fieldops/internal/core"
	"github.com/helioworks/fieldops/internal/observability"
	"github.com/helioworks/fieldops/internal/remote"
	"github.com/helioworks/fieldops/internal/storage"
	"github.com/helioworks/fieldops/pkg/models"
)

// App holds all service dependencies for the field-operations console.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Remote boundary
	Client  remote.TaskClient
	Session remote.AuthContext

	// Core services
	Registry *core.Registry
	Handlers *core.HandlerSet
	Board    *core.Board
	Reassign *core.Reassigner

	// Storage layer
	Roster storage.RosterStore

	// Observability
	EventLog observability.EventLog
	Notifier core.ToastSink
}

// NewApp creates and wires all components of the console. basePath is the
// directory containing .fieldconfig (typically resolved via FIELDOPS_HOME).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	// --- Session credentials ---
	app.Session = remote.AuthContext{
		UserID: os.Getenv("FIELDOPS_USER"),
		Role:   os.Getenv("FIELDOPS_ROLE"),
		Token:  os.Getenv("FIELDOPS_TOKEN"),
	}

	// --- Remote boundary ---
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	app.Client = remote.NewTaskClient(cfg.API.BaseURL, app.Session, timeout)

	// --- Observability ---
	app.Notifier = observability.NewConsoleNotifier(os.Stderr)
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL != "" {
		app.Notifier = observability.NewWebhookNotifier(app.Notifier, cfg.Notifications.WebhookURL)
	}
	eventLogPath := filepath.Join(basePath, ".fieldops_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable event logging if the log can't be created.
		app.EventLog = nil
	}
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}

	// --- Work-type registry and stage handlers ---
	app.Registry = core.NewRegistry(cfg.WorkTypes)

	svcAdapter := &taskServiceAdapter{client: app.Client}
	app.Handlers = core.NewHandlerSet()
	app.Handlers.Register(core.NewPaymentHandler(svcAdapter))
	app.Handlers.Register(core.NewInstallationHandler(svcAdapter))
	app.Handlers.Register(core.NewDocumentBundleHandler("documents", svcAdapter))
	app.Handlers.Register(core.NewDocumentBundleHandler("data-gathering", svcAdapter))

	// --- Board orchestrator ---
	app.Board = core.NewBoard(app.Session.UserID, svcAdapter, app.Notifier, evtAdapter)

	// --- Roster snapshot (read once per session) ---
	rosterPath := cfg.RosterPath
	if !filepath.IsAbs(rosterPath) {
		rosterPath = filepath.Join(basePath, rosterPath)
	}
	app.Roster = storage.NewRosterStore(rosterPath)
	if err := app.Roster.Load(); err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	roster := make([]core.EmployeeRef, 0)
	for _, e := range app.Roster.GetAll() {
		roster = append(roster, core.EmployeeRef{ID: e.ID, Name: e.Name, Role: e.Role})
	}
	app.Reassign = core.NewReassigner(svcAdapter, roster, app.Notifier, evtAdapter)

	// --- Wire CLI package-level variables ---
	cli.Board = app.Board
	cli.Registry = app.Registry
	cli.Handlers = app.Handlers
	cli.Client = app.Client
	cli.Reassign = app.Reassign
	cli.Roster = app.Roster
	cli.EventLog = app.EventLog
	cli.Notifier = app.Notifier
	cli.SessionID = app.Session.UserID

	return app, nil
}

// Close releases resources held by the App, such as the event log handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the directory holding the console's data files.
// It checks the FIELDOPS_HOME env var, then walks up from the current
// directory looking for .fieldconfig, falling back to the cwd.
func ResolveBasePath() string {
	if home := os.Getenv("FIELDOPS_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".fieldconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// taskServiceAdapter adapts remote.TaskClient to the consumer-side
// interfaces defined in core (TaskService, StageSubmitter,
// ReassignmentRequester).
type taskServiceAdapter struct {
	client remote.TaskClient
}

func (a *taskServiceAdapter) ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error) {
	return a.client.ListByAssignee(ctx, assigneeID)
}

func (a *taskServiceAdapter) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) (*core.MutationResult, error) {
	result, err := a.client.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}
	return coreResult(result), nil
}

func (a *taskServiceAdapter) SubmitStageDocuments(ctx context.Context, taskID string, sub core.StageSubmission) (*core.MutationResult, error) {
	payload := remote.StagePayload{
		HandlerID: sub.HandlerID,
		Fields:    sub.Fields,
	}
	for _, doc := range sub.Documents {
		payload.Documents = append(payload.Documents, remote.StageDocument{
			Kind: doc.Kind,
			Name: doc.Name,
			Path: doc.Path,
		})
	}
	result, err := a.client.SubmitStageDocuments(ctx, taskID, payload)
	if err != nil {
		return nil, err
	}
	return coreResult(result), nil
}

func (a *taskServiceAdapter) CreateReassignmentRequest(ctx context.Context, taskID, fromUser, toUser string) (*core.MutationResult, error) {
	result, err := a.client.CreateReassignmentRequest(ctx, taskID, fromUser, toUser)
	if err != nil {
		return nil, err
	}
	return coreResult(result), nil
}

func coreResult(r *remote.Result) *core.MutationResult {
	return &core.MutationResult{Success: r.Success, Message: r.Message}
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
