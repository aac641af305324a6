package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultBiddingWindow is applied when a farmer starts bidding without a
// closing date.
const defaultBiddingWindow = 7 * 24 * time.Hour

// NewBatchInput carries the farmer-supplied fields for batch creation.
type NewBatchInput struct {
	BatchID     string
	FarmerID    string
	CropType    string
	HarvestDate time.Time
	Location    string
	Images      []string
	Quantity    int
	PricePerKg  float64
}

// NewBatch creates a batch in the Created status and seeds the trade ledger
// with the farmer as first owner. The ledger is never empty afterwards.
func NewBatch(actor Actor, in NewBatchInput, now time.Time) (Batch, error) {
	if actor.Role != RoleFarmer {
		return Batch{}, fmt.Errorf("%w: only a farmer may create a batch", ErrForbidden)
	}
	if strings.TrimSpace(in.BatchID) == "" || strings.TrimSpace(in.CropType) == "" {
		return Batch{}, fmt.Errorf("%w: batch_id and crop_type are required", ErrValidation)
	}
	if in.Quantity <= 0 {
		return Batch{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if in.PricePerKg <= 0 {
		return Batch{}, fmt.Errorf("%w: price_per_kg must be positive", ErrValidation)
	}

	return Batch{
		ID:                uuid.NewString(),
		BatchID:           strings.TrimSpace(in.BatchID),
		FarmerID:          in.FarmerID,
		CropType:          strings.TrimSpace(in.CropType),
		HarvestDate:       in.HarvestDate,
		Location:          in.Location,
		Images:            in.Images,
		Quantity:          in.Quantity,
		AvailableQuantity: in.Quantity,
		PricePerKg:        in.PricePerKg,
		Status:            BatchStatusCreated,
		TradeHistory: []TradeEntry{{
			Owner:      actor.UserID,
			PricePerKg: in.PricePerKg,
			UpdatedAt:  now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Enlist publishes a freshly created batch: Created -> Listed.
func (b Batch) Enlist(actor Actor, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleFarmer); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusCreated {
		return Batch{}, b.invalidState("enlist")
	}
	b.Status = BatchStatusListed
	b.UpdatedAt = now
	return b, nil
}

// StartBidding opens the bidding window: Listed -> Bidding. A zero closing
// date defaults to now plus seven days.
func (b Batch) StartBidding(actor Actor, closingDate time.Time, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleFarmer); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusListed {
		return Batch{}, b.invalidState("start bidding")
	}
	if closingDate.IsZero() {
		closingDate = now.Add(defaultBiddingWindow)
	}
	b.Status = BatchStatusBidding
	b.Bidding = BiddingRecord{
		Status:      BiddingStatusOpen,
		ClosingDate: closingDate,
	}
	b.UpdatedAt = now
	return b, nil
}

// PlaceBid appends a distributor bid while the window is open. Callers must
// run the lazy close first when the deadline has passed (BiddingExpired); this
// function only sees in-window bids.
func (b Batch) PlaceBid(actor Actor, pricePerKg float64, now time.Time) (Batch, error) {
	if actor.Role != RoleDistributor {
		return Batch{}, fmt.Errorf("%w: only a distributor may bid", ErrForbidden)
	}
	if b.Status != BatchStatusBidding {
		return Batch{}, b.invalidState("place bid")
	}
	if b.Bidding.Status != BiddingStatusOpen || now.After(b.Bidding.ClosingDate) {
		return Batch{}, ErrBiddingClosed
	}
	if pricePerKg <= 0 {
		return Batch{}, fmt.Errorf("%w: bid price must be positive", ErrValidation)
	}

	bids := make([]Bid, len(b.Bidding.Bids), len(b.Bidding.Bids)+1)
	copy(bids, b.Bidding.Bids)
	b.Bidding.Bids = append(bids, Bid{
		DistributorID: actor.UserID,
		BidPricePerKg: pricePerKg,
		BidDate:       now,
	})
	b.UpdatedAt = now
	return b, nil
}

// CloseBiddingWindow is the lazy deadline close: it flips the window from Open
// to Closed without resolving a winner. Winner resolution stays an explicit
// separate action (StopBidding).
func (b Batch) CloseBiddingWindow(now time.Time) (Batch, error) {
	if b.Status != BatchStatusBidding || b.Bidding.Status != BiddingStatusOpen {
		return Batch{}, b.invalidState("close bidding window")
	}
	b.Bidding.Status = BiddingStatusClosed
	b.UpdatedAt = now
	return b, nil
}

// StopBidding resolves the winner and moves Bidding -> AwaitingSettlement.
// The strictly greatest bid price wins; ties resolve to the earliest bid. It
// is legal whether the window is still open or was lazily closed by an
// expired deadline, as long as no winner was resolved yet.
func (b Batch) StopBidding(actor Actor, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleFarmer); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusBidding {
		return Batch{}, b.invalidState("stop bidding")
	}
	if len(b.Bidding.Bids) == 0 {
		return Batch{}, ErrNoBids
	}

	winner := b.Bidding.Bids[0]
	for _, bid := range b.Bidding.Bids[1:] {
		if bid.BidPricePerKg > winner.BidPricePerKg {
			winner = bid
		}
	}

	b.Status = BatchStatusAwaitingSettlement
	b.Bidding.Status = BiddingStatusClosed
	b.Bidding.Winner = winner.DistributorID
	b.UpdatedAt = now
	return b, nil
}

// CompleteTransaction transfers ownership to the bidding winner:
// AwaitingSettlement -> SoldToDistributor. This is the only place besides
// creation that appends to the trade ledger for the farmer-to-distributor leg.
func (b Batch) CompleteTransaction(actor Actor, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleFarmer); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusAwaitingSettlement || b.Bidding.Winner == "" {
		return Batch{}, b.invalidState("complete transaction")
	}

	winningPrice := 0.0
	for _, bid := range b.Bidding.Bids {
		if bid.DistributorID == b.Bidding.Winner && bid.BidPricePerKg > winningPrice {
			winningPrice = bid.BidPricePerKg
		}
	}

	b = b.appendTradeEntry(b.Bidding.Winner, winningPrice, now)
	b.PricePerKg = winningPrice
	b.Status = BatchStatusSoldToDistributor
	b.UpdatedAt = now
	return b, nil
}

// EnlistForRetailers publishes the batch on the retail market:
// SoldToDistributor -> ListedForRetailers. PricePerKg becomes the retail
// listing price from here on.
func (b Batch) EnlistForRetailers(actor Actor, pricePerKg float64, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleDistributor); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusSoldToDistributor {
		return Batch{}, b.invalidState("enlist for retailers")
	}
	if pricePerKg <= 0 {
		return Batch{}, fmt.Errorf("%w: price_per_kg must be positive", ErrValidation)
	}
	b.Status = BatchStatusListedForRetailers
	b.PricePerKg = pricePerKg
	b.UpdatedAt = now
	return b, nil
}

// ApplyRetailSale commits a settled retail purchase: decrements available
// quantity and appends the retail order in one step, so quantity conservation
// holds on every persisted state. When the batch sells out it auto-transitions
// to SoldToRetailer.
func (b Batch) ApplyRetailSale(retailerID string, quantity int, pricePerKg float64, paymentID string, now time.Time) (Batch, error) {
	if b.Status != BatchStatusListedForRetailers {
		return Batch{}, b.invalidState("retail purchase")
	}
	if quantity <= 0 {
		return Batch{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if quantity > b.AvailableQuantity {
		return Batch{}, ErrInsufficientQuantity
	}

	orders := make([]RetailOrder, len(b.RetailOrders), len(b.RetailOrders)+1)
	copy(orders, b.RetailOrders)
	b.RetailOrders = append(orders, RetailOrder{
		RetailerID:     retailerID,
		QuantityBought: quantity,
		PricePerKg:     pricePerKg,
		PaymentID:      paymentID,
		PurchaseDate:   now,
	})
	b.AvailableQuantity -= quantity
	if b.AvailableQuantity == 0 {
		b.Status = BatchStatusSoldToRetailer
	}
	b.UpdatedAt = now
	return b, nil
}

// Complete closes out a fully sold batch: SoldToRetailer -> Completed.
func (b Batch) Complete(actor Actor, now time.Time) (Batch, error) {
	if err := b.requireOwner(actor, RoleDistributor); err != nil {
		return Batch{}, err
	}
	if b.Status != BatchStatusSoldToRetailer {
		return Batch{}, b.invalidState("complete batch")
	}
	b.Status = BatchStatusCompleted
	b.UpdatedAt = now
	return b, nil
}

// appendTradeEntry is the only mutator of the trade ledger. Existing entries
// are never edited or removed.
func (b Batch) appendTradeEntry(owner string, pricePerKg float64, now time.Time) Batch {
	history := make([]TradeEntry, len(b.TradeHistory), len(b.TradeHistory)+1)
	copy(history, b.TradeHistory)
	b.TradeHistory = append(history, TradeEntry{
		Owner:      owner,
		PricePerKg: pricePerKg,
		UpdatedAt:  now,
	})
	return b
}

func (b Batch) requireOwner(actor Actor, role Role) error {
	if actor.Role != role {
		return fmt.Errorf("%w: %s role required", ErrForbidden, role)
	}
	if actor.UserID == "" || actor.UserID != b.CurrentOwner() {
		return fmt.Errorf("%w: actor is not the current owner", ErrForbidden)
	}
	return nil
}

func (b Batch) invalidState(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidState, action, b.Status)
}
