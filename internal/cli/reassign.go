package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
)

var reassignTo string

var reassignCmd = &cobra.Command{
	Use:   "reassign <task-id>",
	Short: "Request reassignment of a task to another employee",
	Long: `Request that a task be handed over to another employee. Reassignment
does not change the task directly: it creates a new approval task that a
supervisor resolves, and the original task keeps its assignee until the
approval goes through.

Run without --to to list the roster of possible targets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil || Reassign == nil {
			return fmt.Errorf("console not initialized")
		}

		if reassignTo == "" {
			if Roster == nil {
				return fmt.Errorf("roster not available")
			}
			fmt.Println("Choose a target with --to <employee-id>:")
			for _, e := range Roster.GetAll() {
				fmt.Printf("  %-12s %-20s %s\n", e.ID, e.Name, e.Role)
			}
			return nil
		}

		if err := Board.LoadTasks(cmd.Context()); err != nil {
			return err
		}
		task, err := Board.Get(args[0])
		if err != nil {
			return err
		}

		_, err = Reassign.Request(cmd.Context(), task, SessionID, reassignTo)
		if err != nil {
			// Validation rejections were already surfaced as toasts.
			var vErr *core.ValidationError
			if errors.As(err, &vErr) {
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	reassignCmd.Flags().StringVar(&reassignTo, "to", "", "Employee ID to hand the task over to")
	rootCmd.AddCommand(reassignCmd)
}
