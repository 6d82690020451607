package core

import (
	"context"

	"github.com/helioworks/fieldops/pkg/models"
)

// GenericStageNotice is shown in the task detail view for work types that
// carry no stage-specific interaction panel.
const GenericStageNotice = "No additional details are required for this stage."

// genericHandler is the fallback arm of the work-type dispatch: it renders a
// generic notice and accepts no submissions, so an unknown work type never
// crashes task-detail retrieval.
type genericHandler struct{}

func (h *genericHandler) ID() string {
	return FallbackHandlerID
}

func (h *genericHandler) Describe(desc Descriptor) string {
	return GenericStageNotice
}

func (h *genericHandler) Validate(desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) error {
	return nil
}

func (h *genericHandler) Submit(ctx context.Context, desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) (*MutationResult, error) {
	return nil, &ValidationError{Reason: "this stage has no details to submit"}
}
