package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
)

var (
	docsAttachments []string
	docsFields      []string
)

var docsCmd = &cobra.Command{
	Use:   "docs <task-id>",
	Short: "Upload a document bundle for a task's stage",
	Long: `Upload the documents a stage requires as one bundle. Attachments are
given as kind=path pairs, e.g.:

  fieldops docs TASK-1 --doc panel_warranty=./warranty.pdf --doc inverter_warranty=./inv.pdf

Stages that also require fields (such as site data gathering) take them as
name=value pairs:

  fieldops docs TASK-2 --field roof_area_sqm=42 --doc survey_sheet=./sheet.pdf

The stage's required fields and document kinds are listed in the task
detail panel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, desc, handler, snap, err := resolveStage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		sub := core.StageSubmission{
			TaskID: task.ID,
			Fields: map[string]string{},
		}
		for _, field := range docsFields {
			name, value, ok := strings.Cut(field, "=")
			if !ok || name == "" || value == "" {
				return fmt.Errorf("invalid --field value %q, expected name=value", field)
			}
			sub.Fields[name] = value
		}
		for _, attachment := range docsAttachments {
			kind, path, ok := strings.Cut(attachment, "=")
			if !ok || kind == "" || path == "" {
				return fmt.Errorf("invalid --doc value %q, expected kind=path", attachment)
			}
			sub.Documents = append(sub.Documents, core.StageDocument{Kind: kind, Path: path})
		}

		return submitStage(cmd.Context(), desc, handler, snap, sub,
			fmt.Sprintf("%d document(s) submitted for %s", len(sub.Documents), task.Reference))
	},
}

func init() {
	docsCmd.Flags().StringArrayVar(&docsAttachments, "doc", nil, "Attachment as kind=path (repeatable)")
	docsCmd.Flags().StringArrayVar(&docsFields, "field", nil, "Stage field as name=value (repeatable)")
	rootCmd.AddCommand(docsCmd)
}
