package entities

import "time"

// PaymentStatus is the settlement outcome of a retail purchase attempt.
// A payment is created PENDING and becomes PAID or FAILED exactly once; it
// never reverts.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// RetailPayment is the transient settlement record, one per purchase attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (batch_id-index): batch_id
//
// PricePerKg is the price quoted at reserve time; settlement appends the
// retail order at this price even if the listing price moved in between.
// RefundDue marks the reconciliation case where a payment landed PAID but the
// quantity was consumed by a concurrent settlement before the order could be
// applied.
type RetailPayment struct {
	ID               string        `json:"id"`
	RetailerID       string        `json:"retailer_id"`
	BatchID          string        `json:"batch_id"`
	Quantity         int           `json:"quantity"`
	PricePerKg       float64       `json:"price_per_kg"`
	TotalAmount      float64       `json:"total_amount"`
	GatewayOrderID   string        `json:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	Status           PaymentStatus `json:"status"`
	RefundDue        bool          `json:"refund_due,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
