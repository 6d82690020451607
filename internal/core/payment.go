package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/helioworks/fieldops/pkg/models"
)

// PaymentProofKind is the document kind for a proof-of-payment artifact.
const PaymentProofKind = "payment_proof"

// paymentHandler records a customer payment against the plant order. The
// amount must not exceed the remaining balance, and the amount is never
// recorded without its proof artifact: both go to the server in one request.
type paymentHandler struct {
	svc StageSubmitter
}

// NewPaymentHandler creates the stage handler for payment-collection tasks.
func NewPaymentHandler(svc StageSubmitter) StageHandler {
	return &paymentHandler{svc: svc}
}

func (h *paymentHandler) ID() string {
	return "payment"
}

func (h *paymentHandler) Describe(desc Descriptor) string {
	return desc.Title
}

// Remaining computes the outstanding balance on the customer's plant order.
func Remaining(snap *models.CustomerSnapshot) float64 {
	return snap.Payments.TotalPrice - snap.Payments.PaidToDate
}

// Validate checks the proposed payment: a positive amount no greater than the
// remaining balance, with a proof artifact attached. Paying exactly the
// remaining balance is allowed.
func (h *paymentHandler) Validate(desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) error {
	if err := requireFields(desc, sub); err != nil {
		return err
	}
	if err := requireDocuments(desc, sub); err != nil {
		return err
	}
	if snap == nil {
		return &ValidationError{Reason: "customer payment details are not available"}
	}

	amount, err := strconv.ParseFloat(sub.Fields["amount"], 64)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("amount %q is not a number", sub.Fields["amount"])}
	}
	if amount <= 0 {
		return &ValidationError{Reason: "payment amount must be greater than zero"}
	}
	if remaining := Remaining(snap); amount > remaining {
		return &ValidationError{Reason: fmt.Sprintf("payment of %.2f exceeds the remaining balance of %.2f", amount, remaining)}
	}

	return nil
}

// Submit validates and records the payment. The proof artifact and amount
// travel as one request; success is reported only on remote confirmation.
func (h *paymentHandler) Submit(ctx context.Context, desc Descriptor, snap *models.CustomerSnapshot, sub StageSubmission) (*MutationResult, error) {
	if err := h.Validate(desc, snap, sub); err != nil {
		return nil, err
	}
	sub.HandlerID = h.ID()
	result, err := h.svc.SubmitStageDocuments(ctx, sub.TaskID, sub)
	if err != nil {
		return nil, fmt.Errorf("recording payment for %s: %w", sub.TaskID, err)
	}
	return result, nil
}
