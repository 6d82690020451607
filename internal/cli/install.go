package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
)

var (
	installCrew  string
	installDate  string
	installPhoto string
)

var installCmd = &cobra.Command{
	Use:   "install <task-id>",
	Short: "Record a plant installation visit",
	Long: `Record the installation crew, the installation date, and the site
photo for a plant-installation task. The record is submitted as one
request after local validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, desc, handler, snap, err := resolveStage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if handler.ID() != "installation" {
			return fmt.Errorf("task %s is a %s task, not plant installation", task.Reference, task.WorkType)
		}

		sub := core.StageSubmission{
			TaskID: task.ID,
			Fields: map[string]string{
				"crew":         installCrew,
				"installed_on": installDate,
			},
			Documents: []core.StageDocument{
				{Kind: "site_photo", Path: installPhoto},
			},
		}
		return submitStage(cmd.Context(), desc, handler, snap, sub,
			fmt.Sprintf("Installation recorded for %s", task.Reference))
	},
}

func init() {
	installCmd.Flags().StringVar(&installCrew, "crew", "", "Comma-separated crew member names")
	installCmd.Flags().StringVar(&installDate, "date", "", "Installation date (YYYY-MM-DD)")
	installCmd.Flags().StringVar(&installPhoto, "photo", "", "Path to the site photo")
	_ = installCmd.MarkFlagRequired("crew")
	_ = installCmd.MarkFlagRequired("date")
	_ = installCmd.MarkFlagRequired("photo")
	rootCmd.AddCommand(installCmd)
}
