package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/helioworks/fieldops/pkg/models"
)

// installationHandler records the plant-installation visit: the crew that did
// the work, the installation date, and the site photo evidence.
type installationHandler struct {
	svc StageSubmitter
}

// NewInstallationHandler creates the stage handler for plant-installation tasks.
func NewInstallationHandler(svc StageSubmitter) StageHandler {
	return &installationHandler{svc: svc}
}

func (h *installationHandler) ID() string {
	return "installation"
}

func (h *installationHandler) Describe(desc Descriptor) string {
	return desc.Title
}

// ParseCrew splits a comma-separated crew field into trimmed member names.
func ParseCrew(field string) []string {
	var crew []string
	for _, name := range strings.Split(field, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			crew = append(crew, trimmed)
		}
	}
	return crew
}

// Validate checks the crew record, the installation date, and the required
// photo evidence.
func (h *installationHandler) Validate(desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) error {
	if err := requireFields(desc, sub); err != nil {
		return err
	}
	if err := requireDocuments(desc, sub); err != nil {
		return err
	}

	if len(ParseCrew(sub.Fields["crew"])) == 0 {
		return &ValidationError{Reason: "at least one crew member must be recorded"}
	}

	installedOn, err := time.Parse("2006-01-02", sub.Fields["installed_on"])
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("installed_on %q is not a valid date (expected YYYY-MM-DD)", sub.Fields["installed_on"])}
	}
	if installedOn.After(time.Now()) {
		return &ValidationError{Reason: "installation date cannot be in the future"}
	}

	return nil
}

// Submit validates and records the installation visit in one request.
func (h *installationHandler) Submit(ctx context.Context, desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) (*MutationResult, error) {
	if err := h.Validate(desc, snap, sub); err != nil {
		return nil, err
	}
	sub.HandlerID = h.ID()
	result, err := h.svc.SubmitStageDocuments(ctx, sub.TaskID, sub)
	if err != nil {
		return nil, fmt.Errorf("recording installation for %s: %w", sub.TaskID, err)
	}
	return result, nil
}
