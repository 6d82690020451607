package core

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/helioworks/fieldops/pkg/models"
)

// anyStatus draws from the lifecycle statuses plus a few junk values so the
// rule is exercised outside the known domain too.
func anyStatus() *rapid.Generator[models.TaskStatus] {
	return rapid.Custom(func(t *rapid.T) models.TaskStatus {
		pool := []models.TaskStatus{
			models.StatusPending,
			models.StatusInProgress,
			models.StatusCompleted,
			models.TaskStatus("on-hold"),
			models.TaskStatus(""),
		}
		idx := rapid.IntRange(0, len(pool)-1).Draw(t, "statusIdx")
		return pool[idx]
	})
}

// Property: CanTransition(a, b) holds iff a == b or b is a's immediate
// successor in [pending, in-progress, completed]; every other pair,
// including all backward moves and the pending-to-completed skip, is illegal.
func TestProperty_ForwardOnlyTransitions(t *testing.T) {
	successor := map[models.TaskStatus]models.TaskStatus{
		models.StatusPending:    models.StatusInProgress,
		models.StatusInProgress: models.StatusCompleted,
	}

	rapid.Check(t, func(rt *rapid.T) {
		current := anyStatus().Draw(rt, "current")
		next := anyStatus().Draw(rt, "next")

		want := current == next || successor[current] == next && next != ""
		if got := CanTransition(current, next); got != want {
			rt.Fatalf("CanTransition(%q, %q) = %v, want %v", current, next, got, want)
		}
	})
}

// Property: NextAllowed agrees with CanTransition and excludes the no-op.
func TestProperty_NextAllowedMatchesRule(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		current := anyStatus().Draw(rt, "current")

		allowed := make(map[models.TaskStatus]bool)
		for _, s := range NextAllowed(current) {
			allowed[s] = true
		}

		for _, next := range []models.TaskStatus{models.StatusPending, models.StatusInProgress, models.StatusCompleted} {
			want := CanTransition(current, next) && current != next
			if allowed[next] != want {
				rt.Fatalf("NextAllowed(%q) includes %q = %v, want %v", current, next, allowed[next], want)
			}
		}
	})
}
