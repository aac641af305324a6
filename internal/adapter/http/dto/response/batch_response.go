package response

import (
	"time"

	"agritrade/internal/domain/entities"
)

type BidResponse struct {
	DistributorID string    `json:"distributor_id"`
	BidPricePerKg float64   `json:"bid_price_per_kg"`
	BidDate       time.Time `json:"bid_date"`
}

type BiddingResponse struct {
	Status      string        `json:"status,omitempty"`
	ClosingDate *time.Time    `json:"closing_date,omitempty"`
	Winner      string        `json:"winner,omitempty"`
	Bids        []BidResponse `json:"bids"`
}

type TradeEntryResponse struct {
	Owner      string    `json:"owner"`
	PricePerKg float64   `json:"price_per_kg"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RetailOrderResponse struct {
	RetailerID     string    `json:"retailer_id"`
	QuantityBought int       `json:"quantity_bought"`
	PricePerKg     float64   `json:"price_per_kg"`
	PaymentID      string    `json:"payment_id"`
	PurchaseDate   time.Time `json:"purchase_date"`
}

// BatchResponse is the batch snapshot returned by every lifecycle operation.
// CurrentOwner is the ledger projection, included for convenience; it is never
// a stored field.
type BatchResponse struct {
	ID                string                `json:"id"`
	BatchID           string                `json:"batch_id"`
	FarmerID          string                `json:"farmer_id"`
	CropType          string                `json:"crop_type"`
	HarvestDate       *time.Time            `json:"harvest_date,omitempty"`
	Location          string                `json:"location,omitempty"`
	Images            []string              `json:"images,omitempty"`
	Quantity          int                   `json:"quantity"`
	AvailableQuantity int                   `json:"available_quantity"`
	PricePerKg        float64               `json:"price_per_kg"`
	Status            string                `json:"status"`
	CurrentOwner      string                `json:"current_owner"`
	Bidding           BiddingResponse       `json:"bidding"`
	TradeHistory      []TradeEntryResponse  `json:"trade_history"`
	RetailOrders      []RetailOrderResponse `json:"retail_orders"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromBatch(b entities.Batch) BatchResponse {
	bids := make([]BidResponse, 0, len(b.Bidding.Bids))
	for _, bid := range b.Bidding.Bids {
		bids = append(bids, BidResponse{
			DistributorID: bid.DistributorID,
			BidPricePerKg: bid.BidPricePerKg,
			BidDate:       bid.BidDate,
		})
	}

	history := make([]TradeEntryResponse, 0, len(b.TradeHistory))
	for _, e := range b.TradeHistory {
		history = append(history, TradeEntryResponse{
			Owner:      e.Owner,
			PricePerKg: e.PricePerKg,
			UpdatedAt:  e.UpdatedAt,
		})
	}

	orders := make([]RetailOrderResponse, 0, len(b.RetailOrders))
	for _, o := range b.RetailOrders {
		orders = append(orders, RetailOrderResponse{
			RetailerID:     o.RetailerID,
			QuantityBought: o.QuantityBought,
			PricePerKg:     o.PricePerKg,
			PaymentID:      o.PaymentID,
			PurchaseDate:   o.PurchaseDate,
		})
	}

	return BatchResponse{
		ID:                b.ID,
		BatchID:           b.BatchID,
		FarmerID:          b.FarmerID,
		CropType:          b.CropType,
		HarvestDate:       optionalTime(b.HarvestDate),
		Location:          b.Location,
		Images:            b.Images,
		Quantity:          b.Quantity,
		AvailableQuantity: b.AvailableQuantity,
		PricePerKg:        b.PricePerKg,
		Status:            string(b.Status),
		CurrentOwner:      b.CurrentOwner(),
		Bidding: BiddingResponse{
			Status:      string(b.Bidding.Status),
			ClosingDate: optionalTime(b.Bidding.ClosingDate),
			Winner:      b.Bidding.Winner,
			Bids:        bids,
		},
		TradeHistory: history,
		RetailOrders: orders,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func FromBatches(batches []entities.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, FromBatch(b))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
