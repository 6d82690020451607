package core

import (
	"context"

	"github.com/helioworks/fieldops/pkg/models"
)

// StageDocument is one artifact attached to a stage submission.
type StageDocument struct {
	Kind string
	Name string
	Path string
}

// StageSubmission is the atomic unit a stage handler sends to the repository
// client: per-stage fields plus any attached documents. The amount of a
// payment and its proof artifact travel together in one submission.
type StageSubmission struct {
	TaskID    string
	HandlerID string
	Fields    map[string]string
	Documents []StageDocument
}

// StageSubmitter is the subset of the repository client stage handlers need.
type StageSubmitter interface {
	SubmitStageDocuments(ctx context.Context, taskID string, sub StageSubmission) (*MutationResult, error)
}

// StageHandler is the validation and submission unit for one work type.
// Handlers are independent of the status machine: each owns its descriptor's
// completeness check and performs a single atomic submission.
type StageHandler interface {
	ID() string
	// Describe returns the panel heading shown in the task detail view.
	Describe(desc Descriptor) string
	// Validate checks a proposed submission against the descriptor's
	// required fields and documents and the customer snapshot. A non-nil
	// return is always a *ValidationError and no repository call is made.
	Validate(desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) error
	// Submit validates and then sends the submission through the repository
	// client. Success is reported only when the remote confirms.
	Submit(ctx context.Context, desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) (*MutationResult, error)
}

// HandlerSet maps handler identifiers to their implementations. It is built
// once during wiring; Resolve falls through to the generic handler so an
// unknown handler ID never fails task-detail retrieval.
type HandlerSet struct {
	handlers map[string]StageHandler
	generic  StageHandler
}

// NewHandlerSet creates a HandlerSet seeded with the generic fallback handler.
func NewHandlerSet() *HandlerSet {
	return &HandlerSet{
		handlers: make(map[string]StageHandler),
		generic:  &genericHandler{},
	}
}

// Register adds a handler keyed by its ID, replacing any previous handler
// with the same ID.
func (hs *HandlerSet) Register(h StageHandler) {
	hs.handlers[h.ID()] = h
}

// Resolve returns the handler bound to the descriptor resolved from the
// registry for the given work type, together with that descriptor. Unknown
// work types and unknown handler IDs both land on the generic handler.
func (hs *HandlerSet) Resolve(registry *Registry, workType models.WorkType) (Descriptor, StageHandler) {
	desc := registry.Resolve(workType)
	if h, ok := hs.handlers[desc.HandlerID]; ok {
		return desc, h
	}
	return desc, hs.generic
}

// requireFields checks that every required field is present and non-empty.
func requireFields(desc Descriptor, sub StageSubmission) error {
	for _, field := range desc.RequiredFields {
		if sub.Fields[field] == "" {
			return &ValidationError{Reason: "missing required field: " + field}
		}
	}
	return nil
}

// requireDocuments checks that every required document kind has an artifact.
func requireDocuments(desc Descriptor, sub StageSubmission) error {
	attached := make(map[string]bool, len(sub.Documents))
	for _, doc := range sub.Documents {
		if doc.Path != "" {
			attached[doc.Kind] = true
		}
	}
	for _, kind := range desc.RequiredDocuments {
		if !attached[kind] {
			return &ValidationError{Reason: "missing required document: " + kind}
		}
	}
	return nil
}
