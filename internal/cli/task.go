package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
)

var taskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Show the detail panel for a task",
	Long: `Show a task's detail panel. The task's work type resolves to a stage
handler whose required fields and documents are listed; unknown work types
fall back to a generic notice instead of failing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil || Registry == nil || Handlers == nil {
			return fmt.Errorf("console not initialized")
		}

		if err := Board.LoadTasks(cmd.Context()); err != nil {
			return err
		}

		task, err := Board.Get(args[0])
		if err != nil {
			return err
		}

		desc, handler := Handlers.Resolve(Registry, task.WorkType)

		fmt.Printf("%s  [%s]\n", task.Reference, core.StatusLabel(task.Status))
		fmt.Printf("Work type: %s\n", task.WorkType)
		fmt.Printf("Work:      %s\n", task.Work)
		fmt.Printf("Assigned:  %s (%s)\n", task.AssignedOn.Format("2006-01-02"), task.AssignedRole)
		if allowed := core.NextAllowed(task.Status); len(allowed) > 0 {
			fmt.Printf("Next:      %s\n", allowed[0])
		}
		fmt.Println()

		fmt.Printf("-- %s --\n", handler.Describe(desc))
		if handler.ID() != core.FallbackHandlerID {
			if len(desc.RequiredFields) > 0 {
				fmt.Printf("Required fields:    %s\n", strings.Join(desc.RequiredFields, ", "))
			}
			if len(desc.RequiredDocuments) > 0 {
				fmt.Printf("Required documents: %s\n", strings.Join(desc.RequiredDocuments, ", "))
			}
		}

		// The customer snapshot is a read-only projection; show the parts
		// relevant to the stage.
		if task.CustomerID != "" && Client != nil {
			snap, err := Client.GetCustomerSnapshot(cmd.Context(), task.CustomerID)
			if err != nil {
				fmt.Printf("\nCustomer details unavailable: %v\n", err)
				return nil
			}
			fmt.Printf("\nCustomer: %s, %s\n", snap.Name, snap.Address)
			fmt.Printf("Plant:    %.1f kW, %d panels\n", snap.Plant.CapacityKW, snap.Plant.PanelCount)
			fmt.Printf("Balance:  %.2f of %.2f outstanding\n", core.Remaining(snap), snap.Payments.TotalPrice)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
}
