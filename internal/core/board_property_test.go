package core

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/helioworks/fieldops/pkg/models"
)

func anyWorkType() *rapid.Generator[models.WorkType] {
	return rapid.SampledFrom([]models.WorkType{
		models.WorkTypeDataGathering,
		models.WorkTypePaymentCollection,
		models.WorkTypePlantInstallation,
		models.WorkTypeWarrantyUpload,
		models.WorkType("legacy-survey"),
	})
}

// Property: for any task set and any work-type filter, the three buckets
// partition the filtered set exactly and preserve relative order.
func TestProperty_BucketsPartitionExactly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		tasks := make([]models.Task, n)
		for i := range tasks {
			tasks[i] = models.Task{
				ID:       fmt.Sprintf("t%03d", i),
				WorkType: anyWorkType().Draw(rt, "workType"),
				Status:   anyStatus().Draw(rt, "status"),
			}
		}

		svc := &fakeTaskService{listResults: [][]models.Task{tasks}}
		b := NewBoard("emp-1", svc, &recordingToasts{}, nil)
		if err := b.LoadTasks(context.Background()); err != nil {
			rt.Fatalf("LoadTasks: %v", err)
		}

		filter := rapid.SampledFrom([]models.WorkType{
			"", models.WorkTypePaymentCollection, models.WorkType("legacy-survey"),
		}).Draw(rt, "filter")

		view := b.Buckets(filter)

		want := 0
		for _, task := range tasks {
			if filter == "" || task.WorkType == filter {
				want++
			}
		}
		got := len(view.Pending) + len(view.InProgress) + len(view.Completed)
		if got != want {
			rt.Fatalf("buckets hold %d tasks, filtered set has %d", got, want)
		}

		// No task appears in more than one bucket.
		seen := make(map[*models.Task]bool)
		for _, bucket := range [][]*models.Task{view.Pending, view.InProgress, view.Completed} {
			for _, task := range bucket {
				if seen[task] {
					rt.Fatalf("task %s appears in two buckets", task.ID)
				}
				seen[task] = true
				if filter != "" && task.WorkType != filter {
					rt.Fatalf("task %s with work type %s leaked through filter %s", task.ID, task.WorkType, filter)
				}
			}
		}

		// Each bucket preserves the source list's relative order.
		pos := make(map[*models.Task]int)
		for i, task := range b.Tasks() {
			pos[task] = i
		}
		for _, bucket := range [][]*models.Task{view.Pending, view.InProgress, view.Completed} {
			for i := 1; i < len(bucket); i++ {
				if pos[bucket[i-1]] > pos[bucket[i]] {
					rt.Fatalf("bucket order diverges from list order at %s", bucket[i].ID)
				}
			}
		}
	})
}
