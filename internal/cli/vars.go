package cli

import (
	"github.com/helioworks/fieldops/internal/core"
	"github.com/helioworks/fieldops/internal/observability"
	"github.com/helioworks/fieldops/internal/remote"
	"github.com/helioworks/fieldops/internal/storage"
)

// Service instances, set during app initialization in app.go.
var (
	Board     *core.Board
	Registry  *core.Registry
	Handlers  *core.HandlerSet
	Client    remote.TaskClient
	Reassign  *core.Reassigner
	Roster    storage.RosterStore
	EventLog  observability.EventLog
	Notifier  core.ToastSink
	SessionID string // signed-in employee ID
)
