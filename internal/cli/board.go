package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
	"github.com/helioworks/fieldops/pkg/models"
)

var boardWorkTypeFilter string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Display your tasks grouped by status",
	Long: `Fetch your assigned tasks and display them as a status board with
pending, in-progress, and completed columns.

Optionally narrow the board to one pipeline stage with --work-type
(e.g. --work-type payment-collection).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		if err := Board.LoadTasks(cmd.Context()); err != nil {
			return err
		}

		view := Board.Buckets(models.WorkType(boardWorkTypeFilter))
		printBucket("Pending", view.Pending)
		printBucket("In Progress", view.InProgress)
		printBucket("Completed", view.Completed)
		return nil
	},
}

// printBucket prints a table of tasks under a status heading.
func printBucket(label string, tasks []*models.Task) {
	fmt.Printf("== %s (%d) ==\n", strings.ToUpper(label), len(tasks))
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}
	fmt.Printf("  %-12s %-22s %-12s %s\n", "REF", "WORK TYPE", "ASSIGNED", "WORK")
	fmt.Printf("  %-12s %-22s %-12s %s\n", "---", "---------", "--------", "----")
	for _, task := range tasks {
		fmt.Printf("  %-12s %-22s %-12s %s\n",
			task.Reference, task.WorkType, task.AssignedOn.Format("2006-01-02"), task.Work)
	}
	fmt.Println()
}

var moveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to its next status",
	Long: `Request a status change for a task. Statuses only move forward:
pending -> in-progress -> completed. Illegal moves are rejected locally
without contacting the server; the server's own check remains authoritative
for legal moves.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		taskID, next := args[0], models.TaskStatus(args[1])

		if err := Board.LoadTasks(cmd.Context()); err != nil {
			return err
		}

		err := Board.RequestStatusChange(cmd.Context(), taskID, next)
		if err != nil {
			// Validation and busy rejections were already surfaced as toasts;
			// suggest the legal next step instead of repeating the error.
			var vErr *core.ValidationError
			var bErr *core.TaskBusyError
			if errors.As(err, &vErr) || errors.As(err, &bErr) {
				if task, getErr := Board.Get(taskID); getErr == nil {
					if allowed := core.NextAllowed(task.Status); len(allowed) > 0 {
						fmt.Printf("Next allowed status: %s\n", allowed[0])
					}
				}
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardWorkTypeFilter, "work-type", "", "Filter the board to one work type")
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(moveCmd)
}
