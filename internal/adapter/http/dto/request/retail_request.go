package request

// EnlistForRetailersRequest sets the retail listing price for a batch the
// distributor now owns.
type EnlistForRetailersRequest struct {
	PricePerKg float64 `json:"price_per_kg" binding:"required,gt=0"`
}

// ReservePurchaseRequest starts the two-phase retail settlement: it quotes a
// quantity against a listed batch and opens a gateway order for it.
type ReservePurchaseRequest struct {
	BatchID  string `json:"batch_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// SettlePaymentRequest carries the gateway's capture proof back to the engine.
type SettlePaymentRequest struct {
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string `json:"gateway_signature" binding:"required"`
}
