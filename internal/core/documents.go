package core

import (
	"context"
	"fmt"

	"github.com/helioworks/fieldops/pkg/models"
)

// documentBundleHandler submits a bundle of stage documents (warranty cards,
// site survey sheets, indent forms) in one request. The required document
// kinds come from the work-type descriptor; the handler owns its own
// completeness check.
type documentBundleHandler struct {
	id  string
	svc StageSubmitter
}

// NewDocumentBundleHandler creates a document-bundle stage handler registered
// under the given handler ID. The same implementation serves every document
// upload work type; only the descriptor's requirements differ.
func NewDocumentBundleHandler(id string, svc StageSubmitter) StageHandler {
	return &documentBundleHandler{id: id, svc: svc}
}

func (h *documentBundleHandler) ID() string {
	return h.id
}

func (h *documentBundleHandler) Describe(desc Descriptor) string {
	return desc.Title
}

// Validate checks that every required field and document kind is present.
func (h *documentBundleHandler) Validate(desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) error {
	if err := requireFields(desc, sub); err != nil {
		return err
	}
	return requireDocuments(desc, sub)
}

// Submit validates the bundle and uploads it atomically.
func (h *documentBundleHandler) Submit(ctx context.Context, desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) (*MutationResult, error) {
	if err := h.Validate(desc, snap, sub); err != nil {
		return nil, err
	}
	sub.HandlerID = h.id
	result, err := h.svc.SubmitStageDocuments(ctx, sub.TaskID, sub)
	if err != nil {
		return nil, fmt.Errorf("submitting %s documents for %s: %w", h.id, sub.TaskID, err)
	}
	return result, nil
}
