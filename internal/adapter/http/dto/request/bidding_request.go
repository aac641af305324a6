package request

import "time"

// StartBiddingRequest opens the bidding window. ClosingDate is optional; the
// engine defaults it to seven days out when omitted.
type StartBiddingRequest struct {
	ClosingDate time.Time `json:"closing_date"`
}

// PlaceBidRequest is a distributor's competitive offer.
type PlaceBidRequest struct {
	BidPricePerKg float64 `json:"bid_price_per_kg" binding:"required,gt=0"`
}
