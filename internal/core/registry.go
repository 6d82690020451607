package core

import (
	"sort"

	"github.com/helioworks/fieldops/pkg/models"
)

// Descriptor binds a work-type key to the stage handler responsible for that
// pipeline stage and the completeness policy the handler enforces.
type Descriptor struct {
	Key               models.WorkType
	HandlerID         string
	Title             string
	RequiredFields    []string
	RequiredDocuments []string
}

// FallbackHandlerID identifies the generic handler used for work types the
// registry does not know about.
const FallbackHandlerID = "generic"

// Registry is the static work-type dispatch table. It is built once at
// startup from configuration and read-only thereafter; Resolve is total over
// all string keys because unknown work types fall through to a generic
// descriptor instead of failing.
type Registry struct {
	descriptors map[models.WorkType]Descriptor
	fallback    Descriptor
}

// DefaultWorkTypes returns the built-in work-type table used when the
// configuration file does not define one.
func DefaultWorkTypes() []models.WorkTypeConfig {
	return []models.WorkTypeConfig{
		{
			Key:            string(models.WorkTypeDataGathering),
			HandlerID:      "data-gathering",
			Title:          "Site Data Gathering",
			RequiredFields: []string{"roof_area_sqm", "meter_number", "sanctioned_load_kw"},
		},
		{
			Key:               string(models.WorkTypePaymentCollection),
			HandlerID:         "payment",
			Title:             "Payment Collection",
			RequiredFields:    []string{"amount"},
			RequiredDocuments: []string{"payment_proof"},
		},
		{
			Key:               string(models.WorkTypePlantInstallation),
			HandlerID:         "installation",
			Title:             "Plant Installation",
			RequiredFields:    []string{"crew", "installed_on"},
			RequiredDocuments: []string{"site_photo"},
		},
		{
			Key:               string(models.WorkTypeWarrantyUpload),
			HandlerID:         "documents",
			Title:             "Warranty Upload",
			RequiredDocuments: []string{"panel_warranty", "inverter_warranty"},
		},
		{
			Key:       string(models.WorkTypeReassignApproval),
			HandlerID: "approval",
			Title:     "Reassignment Approval",
		},
	}
}

// NewRegistry builds a Registry from the configured work-type table. Entries
// with an empty key are skipped; a later entry for the same key wins.
func NewRegistry(table []models.WorkTypeConfig) *Registry {
	r := &Registry{
		descriptors: make(map[models.WorkType]Descriptor, len(table)),
		fallback: Descriptor{
			HandlerID: FallbackHandlerID,
			Title:     "No additional details",
		},
	}
	for _, entry := range table {
		if entry.Key == "" {
			continue
		}
		r.descriptors[models.WorkType(entry.Key)] = Descriptor{
			Key:               models.WorkType(entry.Key),
			HandlerID:         entry.HandlerID,
			Title:             entry.Title,
			RequiredFields:    entry.RequiredFields,
			RequiredDocuments: entry.RequiredDocuments,
		}
	}
	return r
}

// Resolve returns the descriptor for the given work type. Unknown keys
// return the fallback descriptor carrying the key that was asked for, so
// task-detail retrieval never fails on an unexpected work type.
func (r *Registry) Resolve(workType models.WorkType) Descriptor {
	if d, ok := r.descriptors[workType]; ok {
		return d
	}
	d := r.fallback
	d.Key = workType
	return d
}

// Known reports whether the work type has a configured descriptor.
func (r *Registry) Known(workType models.WorkType) bool {
	_, ok := r.descriptors[workType]
	return ok
}

// Keys returns the configured work-type keys in sorted order, used to
// populate filter choices in the UI shell.
func (r *Registry) Keys() []models.WorkType {
	keys := make([]models.WorkType, 0, len(r.descriptors))
	for k := range r.descriptors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
