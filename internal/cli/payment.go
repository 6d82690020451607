package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/internal/core"
)

var (
	paymentAmount string
	paymentProof  string
)

var paymentCmd = &cobra.Command{
	Use:   "payment <task-id>",
	Short: "Record a customer payment for a payment-collection task",
	Long: `Record a payment against the customer's plant order. The amount must
not exceed the remaining balance and a proof-of-payment artifact is
required; amount and proof are uploaded together in one request.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, desc, handler, snap, err := resolveStage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if handler.ID() != "payment" {
			return fmt.Errorf("task %s is a %s task, not payment collection", task.Reference, task.WorkType)
		}
		if snap != nil {
			fmt.Printf("Remaining balance: %.2f\n", core.Remaining(snap))
		}

		sub := core.StageSubmission{
			TaskID: task.ID,
			Fields: map[string]string{"amount": paymentAmount},
			Documents: []core.StageDocument{
				{Kind: core.PaymentProofKind, Path: paymentProof},
			},
		}
		return submitStage(cmd.Context(), desc, handler, snap, sub,
			fmt.Sprintf("Payment of %s recorded for %s", paymentAmount, task.Reference))
	},
}

func init() {
	paymentCmd.Flags().StringVar(&paymentAmount, "amount", "", "Payment amount")
	paymentCmd.Flags().StringVar(&paymentProof, "proof", "", "Path to the proof-of-payment artifact")
	_ = paymentCmd.MarkFlagRequired("amount")
	_ = paymentCmd.MarkFlagRequired("proof")
	rootCmd.AddCommand(paymentCmd)
}
