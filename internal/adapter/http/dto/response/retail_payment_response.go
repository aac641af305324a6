package response

import (
	"time"

	"agritrade/internal/domain/entities"
)

// RetailPaymentResponse is the settlement snapshot returned by the reserve and
// settle operations. GatewayOrderID is what the buyer pays against at the
// gateway before calling settle.
type RetailPaymentResponse struct {
	PaymentID        string    `json:"payment_id"`
	RetailerID       string    `json:"retailer_id"`
	BatchID          string    `json:"batch_id"`
	Quantity         int       `json:"quantity"`
	PricePerKg       float64   `json:"price_per_kg"`
	TotalAmount      float64   `json:"total_amount"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	Status           string    `json:"status"`
	RefundDue        bool      `json:"refund_due,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromRetailPayments(payments []entities.RetailPayment) []RetailPaymentResponse {
	out := make([]RetailPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromRetailPayment(p))
	}
	return out
}

func FromRetailPayment(p entities.RetailPayment) RetailPaymentResponse {
	return RetailPaymentResponse{
		PaymentID:        p.ID,
		RetailerID:       p.RetailerID,
		BatchID:          p.BatchID,
		Quantity:         p.Quantity,
		PricePerKg:       p.PricePerKg,
		TotalAmount:      p.TotalAmount,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           string(p.Status),
		RefundDue:        p.RefundDue,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
