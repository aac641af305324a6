package interfaces

import (
	"context"
	"errors"

	"agritrade/internal/domain/entities"
)

// ErrStatusConflict is returned by UpdateStatus when the payment is no longer
// in the expected status. It is how the repository guarantees the
// PENDING -> PAID / PENDING -> FAILED flip happens exactly once.
var ErrStatusConflict = errors.New("retail payment status conflict")

// IRetailPaymentRepository abstracts DynamoDB persistence for RetailPayment.

type IRetailPaymentRepository interface {
	Create(ctx context.Context, p entities.RetailPayment) (entities.RetailPayment, error)
	GetByID(ctx context.Context, id string) (entities.RetailPayment, error)
	ListByBatchID(ctx context.Context, batchID string) ([]entities.RetailPayment, error)
	// UpdateStatus flips the payment from the expected status to the new one,
	// recording the gateway payment id, conditionally on the current status.
	UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.RetailPayment, error)
	// MarkRefundDue flags a PAID payment whose order could not be applied.
	MarkRefundDue(ctx context.Context, id string) (entities.RetailPayment, error)
}
