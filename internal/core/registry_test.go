package core

import (
	"testing"

	"github.com/helioworks/fieldops/pkg/models"
)

func TestRegistry_ResolveKnown(t *testing.T) {
	r := NewRegistry(DefaultWorkTypes())

	desc := r.Resolve(models.WorkTypePaymentCollection)
	if desc.HandlerID != "payment" {
		t.Errorf("payment-collection resolved to handler %q, want %q", desc.HandlerID, "payment")
	}
	if len(desc.RequiredDocuments) == 0 {
		t.Error("payment-collection descriptor should require a proof document")
	}
}

func TestRegistry_UnknownWorkTypeNeverFails(t *testing.T) {
	r := NewRegistry(DefaultWorkTypes())

	desc := r.Resolve(models.WorkType("totally_unexpected_key"))
	if desc.HandlerID != FallbackHandlerID {
		t.Errorf("unknown work type resolved to handler %q, want fallback %q", desc.HandlerID, FallbackHandlerID)
	}
	if desc.Key != models.WorkType("totally_unexpected_key") {
		t.Errorf("fallback descriptor should carry the requested key, got %q", desc.Key)
	}
	if r.Known(models.WorkType("totally_unexpected_key")) {
		t.Error("unknown key reported as known")
	}
}

func TestRegistry_LaterEntryWins(t *testing.T) {
	r := NewRegistry([]models.WorkTypeConfig{
		{Key: "survey", HandlerID: "documents", Title: "Old"},
		{Key: "survey", HandlerID: "data-gathering", Title: "New"},
		{Key: "", HandlerID: "skipped"},
	})

	desc := r.Resolve(models.WorkType("survey"))
	if desc.HandlerID != "data-gathering" || desc.Title != "New" {
		t.Errorf("expected later entry to win, got %+v", desc)
	}
	if len(r.Keys()) != 1 {
		t.Errorf("expected 1 configured key, got %v", r.Keys())
	}
}

func TestHandlerSet_ResolveFallsBackToGeneric(t *testing.T) {
	hs := NewHandlerSet()
	r := NewRegistry(DefaultWorkTypes())

	// No handlers registered: every work type lands on the generic handler.
	desc, handler := hs.Resolve(r, models.WorkTypePaymentCollection)
	if handler.ID() != FallbackHandlerID {
		t.Errorf("expected generic handler for unregistered ID, got %q", handler.ID())
	}
	if desc.HandlerID != "payment" {
		t.Errorf("descriptor should still be the configured one, got %q", desc.HandlerID)
	}

	hs.Register(NewPaymentHandler(nil))
	_, handler = hs.Resolve(r, models.WorkTypePaymentCollection)
	if handler.ID() != "payment" {
		t.Errorf("expected payment handler after registration, got %q", handler.ID())
	}
}
