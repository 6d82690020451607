package core

import (
	"testing"

	"github.com/helioworks/fieldops/pkg/models"
)

func TestCanTransition_AllPairs(t *testing.T) {
	cases := []struct {
		name    string
		current models.TaskStatus
		next    models.TaskStatus
		want    bool
	}{
		{"pending to pending", models.StatusPending, models.StatusPending, true},
		{"pending to in-progress", models.StatusPending, models.StatusInProgress, true},
		{"pending to completed skips", models.StatusPending, models.StatusCompleted, false},
		{"in-progress to pending backward", models.StatusInProgress, models.StatusPending, false},
		{"in-progress to in-progress", models.StatusInProgress, models.StatusInProgress, true},
		{"in-progress to completed", models.StatusInProgress, models.StatusCompleted, true},
		{"completed to pending backward", models.StatusCompleted, models.StatusPending, false},
		{"completed to in-progress backward", models.StatusCompleted, models.StatusInProgress, false},
		{"completed to completed", models.StatusCompleted, models.StatusCompleted, true},
		{"unknown current", models.TaskStatus("on-hold"), models.StatusInProgress, false},
		{"unknown next", models.StatusPending, models.TaskStatus("on-hold"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.current, tc.next); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.current, tc.next, got, tc.want)
			}
		})
	}
}

func TestNextAllowed(t *testing.T) {
	if got := NextAllowed(models.StatusPending); len(got) != 1 || got[0] != models.StatusInProgress {
		t.Errorf("NextAllowed(pending) = %v, want [in-progress]", got)
	}
	if got := NextAllowed(models.StatusInProgress); len(got) != 1 || got[0] != models.StatusCompleted {
		t.Errorf("NextAllowed(in-progress) = %v, want [completed]", got)
	}
	if got := NextAllowed(models.StatusCompleted); len(got) != 0 {
		t.Errorf("NextAllowed(completed) = %v, want empty", got)
	}
	if got := NextAllowed(models.TaskStatus("on-hold")); len(got) != 0 {
		t.Errorf("NextAllowed(unknown) = %v, want empty", got)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(models.StatusInProgress); got != "In Progress" {
		t.Errorf("StatusLabel(in-progress) = %q, want %q", got, "In Progress")
	}
	// Unrecognized statuses pass through so there is always something to show.
	if got := StatusLabel(models.TaskStatus("on-hold")); got != "on-hold" {
		t.Errorf("StatusLabel(on-hold) = %q, want %q", got, "on-hold")
	}
}

func TestExplainRejection(t *testing.T) {
	if msg := ExplainRejection(models.StatusPending, models.StatusInProgress); msg != "" {
		t.Errorf("legal transition should have empty explanation, got %q", msg)
	}

	// Every illegal pair must produce a non-empty reason.
	all := []models.TaskStatus{models.StatusPending, models.StatusInProgress, models.StatusCompleted}
	for _, current := range all {
		for _, next := range all {
			if CanTransition(current, next) {
				continue
			}
			if msg := ExplainRejection(current, next); msg == "" {
				t.Errorf("ExplainRejection(%s, %s) returned empty message", current, next)
			}
		}
	}

	if msg := ExplainRejection(models.StatusCompleted, models.StatusPending); msg != "completed tasks are final and cannot change status" {
		t.Errorf("unexpected terminal explanation: %q", msg)
	}
}
