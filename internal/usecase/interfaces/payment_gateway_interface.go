package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (e.g. Razorpay).
//
// The trade-engine only consumes two capabilities: creating a gateway order
// for a quoted amount, and verifying the signature the gateway hands the buyer
// after capture (HMAC-SHA256 over "orderId|paymentId" with the shared secret).
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency string, receipt string) (orderID string, err error)
	VerifySignature(orderID, paymentID, signature string) bool
}
