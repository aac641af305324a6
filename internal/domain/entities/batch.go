package entities

import "time"

// BatchStatus represents the lifecycle of a produce batch.
//
// Domain notes:
//   - The trade-engine is the source of truth for batch state.
//   - Transitions happen only through the pure functions in batch_transitions.go;
//     nothing else writes Status.

type BatchStatus string

const (
	BatchStatusCreated            BatchStatus = "created"
	BatchStatusListed             BatchStatus = "listed"
	BatchStatusBidding            BatchStatus = "bidding"
	BatchStatusAwaitingSettlement BatchStatus = "awaiting_settlement"
	BatchStatusSoldToDistributor  BatchStatus = "sold_to_distributor"
	BatchStatusListedForRetailers BatchStatus = "listed_for_retailers"
	BatchStatusSoldToRetailer     BatchStatus = "sold_to_retailer"
	BatchStatusCompleted          BatchStatus = "completed"
)

// BiddingStatus is the state of the bidding window. The zero value means
// bidding was never started for the batch.

type BiddingStatus string

const (
	BiddingStatusOpen   BiddingStatus = "open"
	BiddingStatusClosed BiddingStatus = "closed"
)

// Role identifies the kind of actor driving a transition. Identity and role
// resolution are owned by the upstream identity service; the trade-engine
// trusts the pair it receives.

type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleDistributor Role = "distributor"
	RoleRetailer    Role = "retailer"
)

// Actor is the authenticated caller of a transition.
type Actor struct {
	UserID string
	Role   Role
}

// Bid is a single competitive offer from a distributor. Bids are append-only
// while the window is open; the same distributor may bid more than once and
// the full history is kept.
type Bid struct {
	DistributorID string    `json:"distributor_id"`
	BidPricePerKg float64   `json:"bid_price_per_kg"`
	BidDate       time.Time `json:"bid_date"`
}

// BiddingRecord is the bidding sub-record embedded in a batch.
type BiddingRecord struct {
	Status      BiddingStatus `json:"status,omitempty"`
	ClosingDate time.Time     `json:"closing_date,omitempty"`
	Winner      string        `json:"winner,omitempty"`
	Bids        []Bid         `json:"bids,omitempty"`
}

// TradeEntry is one ownership+price snapshot in the append-only ledger.
type TradeEntry struct {
	Owner      string    `json:"owner"`
	PricePerKg float64   `json:"price_per_kg"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RetailOrder is one confirmed, paid retail purchase against a batch.
type RetailOrder struct {
	RetailerID     string    `json:"retailer_id"`
	QuantityBought int       `json:"quantity_bought"`
	PricePerKg     float64   `json:"price_per_kg"`
	PaymentID      string    `json:"payment_id"`
	PurchaseDate   time.Time `json:"purchase_date"`
}

// Batch is the root aggregate: one traceable lot of harvested produce and its
// full commercial lifecycle record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency token; every save is conditional on it.
//
// Invariants:
//   - TradeHistory is non-empty from creation and append-only; the last entry's
//     Owner is the authoritative current owner (never cached in a field).
//   - sum(RetailOrders.QuantityBought) + AvailableQuantity == Quantity.
type Batch struct {
	ID                string        `json:"id"`
	BatchID           string        `json:"batch_id"`
	FarmerID          string        `json:"farmer_id"`
	CropType          string        `json:"crop_type"`
	HarvestDate       time.Time     `json:"harvest_date"`
	Location          string        `json:"location"`
	Images            []string      `json:"images,omitempty"`
	Quantity          int           `json:"quantity"`
	AvailableQuantity int           `json:"available_quantity"`
	PricePerKg        float64       `json:"price_per_kg"`
	Status            BatchStatus   `json:"status"`
	Bidding           BiddingRecord `json:"bidding"`
	TradeHistory      []TradeEntry  `json:"trade_history"`
	RetailOrders      []RetailOrder `json:"retail_orders,omitempty"`
	Version           int           `json:"-"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// CurrentOwner projects the owner-of-record from the trade ledger.
func (b Batch) CurrentOwner() string {
	if len(b.TradeHistory) == 0 {
		return ""
	}
	return b.TradeHistory[len(b.TradeHistory)-1].Owner
}

// SoldQuantity is the total quantity committed to retail orders.
func (b Batch) SoldQuantity() int {
	total := 0
	for _, o := range b.RetailOrders {
		total += o.QuantityBought
	}
	return total
}

// BiddingExpired reports whether the bidding window deadline has passed while
// the window is still open. Callers persist the lazy close before rejecting
// the triggering action.
func (b Batch) BiddingExpired(now time.Time) bool {
	return b.Status == BatchStatusBidding &&
		b.Bidding.Status == BiddingStatusOpen &&
		now.After(b.Bidding.ClosingDate)
}
