package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRetailPaymentNotFound = errors.New("retail payment not found")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrInvalidSignature      = errors.New("payment signature mismatch")
	ErrPaymentNotPending     = errors.New("payment was already settled")
	ErrOversoldRefundDue     = errors.New("payment captured but quantity no longer available, refund due")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

const defaultCurrency = "INR"

// IRetailUseCase drives the two-phase retail settlement flow: reserve a price
// quote against a listed batch, settle it once the gateway confirms payment.

type IRetailUseCase interface {
	EnlistForRetailers(ctx context.Context, actor entities.Actor, id string, pricePerKg float64) (entities.Batch, error)
	ReservePurchase(ctx context.Context, actor entities.Actor, batchID string, quantity int) (entities.RetailPayment, error)
	SettlePayment(ctx context.Context, paymentID, gatewayPaymentID, gatewaySignature string) (entities.RetailPayment, error)
	GetPayment(ctx context.Context, id string) (entities.RetailPayment, error)
	ListBatchPayments(ctx context.Context, batchID string) ([]entities.RetailPayment, error)
}

type RetailUseCase struct {
	batchRepo   interfaces.IBatchRepository
	paymentRepo interfaces.IRetailPaymentRepository
	gateway     interfaces.IPaymentGateway
	registry    interfaces.IRoleRegistry
}

var _ IRetailUseCase = (*RetailUseCase)(nil)

func NewRetailUseCase(
	batchRepo interfaces.IBatchRepository,
	paymentRepo interfaces.IRetailPaymentRepository,
	gateway interfaces.IPaymentGateway,
	registry interfaces.IRoleRegistry,
) *RetailUseCase {
	return &RetailUseCase{batchRepo: batchRepo, paymentRepo: paymentRepo, gateway: gateway, registry: registry}
}

func (u *RetailUseCase) EnlistForRetailers(ctx context.Context, actor entities.Actor, id string, pricePerKg float64) (entities.Batch, error) {
	b, err := u.loadBatch(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}

	updated, err := b.EnlistForRetailers(actor, pricePerKg, time.Now().UTC())
	if err != nil {
		log.Printf("[retail][usecase] enlist-for-retailers rejected id=%s err=%v", id, err)
		return entities.Batch{}, err
	}

	saved, err := u.batchRepo.Save(ctx, updated)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Batch{}, ErrConcurrentUpdate
		}
		return entities.Batch{}, err
	}
	log.Printf("[retail][usecase] enlist-for-retailers success id=%s price=%.2f", id, pricePerKg)
	return saved, nil
}

// ReservePurchase validates the quote read-only, creates the gateway order and
// persists a PENDING payment. Nothing on the batch is decremented here: an
// abandoned reservation holds no quantity hostage. The gateway call happens
// with no batch write in flight.
func (u *RetailUseCase) ReservePurchase(ctx context.Context, actor entities.Actor, batchID string, quantity int) (entities.RetailPayment, error) {
	log.Printf("[retail][usecase] reserve start batch_id=%s actor=%s quantity=%d", batchID, actor.UserID, quantity)

	if u.gateway == nil {
		log.Printf("[retail][usecase] gateway not configured batch_id=%s", batchID)
		return entities.RetailPayment{}, ErrGatewayNotConfigured
	}
	if actor.Role != entities.RoleRetailer {
		return entities.RetailPayment{}, entities.ErrForbidden
	}
	retailerID, err := u.registry.ResolveRoleEntity(ctx, actor.UserID, entities.RoleRetailer)
	if err != nil {
		log.Printf("[retail][usecase] retailer profile resolution failed actor=%s err=%v", actor.UserID, err)
		return entities.RetailPayment{}, entities.ErrForbidden
	}

	b, err := u.loadBatch(ctx, batchID)
	if err != nil {
		return entities.RetailPayment{}, err
	}
	if b.Status != entities.BatchStatusListedForRetailers {
		return entities.RetailPayment{}, entities.ErrInvalidState
	}
	if quantity <= 0 {
		return entities.RetailPayment{}, entities.ErrValidation
	}
	if quantity > b.AvailableQuantity {
		return entities.RetailPayment{}, entities.ErrInsufficientQuantity
	}

	now := time.Now().UTC()
	total := float64(quantity) * b.PricePerKg
	p := entities.RetailPayment{
		ID:          uuid.NewString(),
		RetailerID:  retailerID,
		BatchID:     b.ID,
		Quantity:    quantity,
		PricePerKg:  b.PricePerKg,
		TotalAmount: total,
		Status:      entities.PaymentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	orderID, err := u.gateway.CreateOrder(ctx, toMinorUnits(total), paymentCurrency(), p.ID)
	if err != nil {
		log.Printf("[retail][usecase] gateway order failed batch_id=%s err=%v", batchID, err)
		return entities.RetailPayment{}, err
	}
	p.GatewayOrderID = orderID

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[retail][usecase] payment create failed batch_id=%s err=%v", batchID, err)
		return entities.RetailPayment{}, err
	}
	log.Printf("[retail][usecase] reserve success payment_id=%s order_id=%s total=%.2f", created.ID, orderID, total)
	return created, nil
}

// SettlePayment converts a PENDING reservation into a confirmed order. The
// signature check decides PAID or FAILED exactly once; only after PAID does the
// batch get decremented, under the compare-and-swap. If the order cannot be
// applied after the flip, because the quantity was consumed by a concurrent
// settlement or the retry budget ran out, the payment stays PAID but is
// flagged RefundDue and the caller gets the reconciliation error. Money
// captured without an applied order always ends up visible to reconciliation.
func (u *RetailUseCase) SettlePayment(ctx context.Context, paymentID, gatewayPaymentID, gatewaySignature string) (entities.RetailPayment, error) {
	log.Printf("[retail][usecase] settle start payment_id=%s", paymentID)

	if u.gateway == nil {
		log.Printf("[retail][usecase] gateway not configured payment_id=%s", paymentID)
		return entities.RetailPayment{}, ErrGatewayNotConfigured
	}

	p, err := u.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.RetailPayment{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.RetailPayment{}, ErrPaymentNotPending
	}
	if strings.TrimSpace(gatewayPaymentID) == "" || strings.TrimSpace(gatewaySignature) == "" {
		return entities.RetailPayment{}, entities.ErrValidation
	}

	if !u.gateway.VerifySignature(p.GatewayOrderID, gatewayPaymentID, gatewaySignature) {
		if _, err := u.paymentRepo.UpdateStatus(ctx, p.ID, entities.PaymentStatusPending, entities.PaymentStatusFailed, gatewayPaymentID); err != nil {
			if errors.Is(err, interfaces.ErrStatusConflict) {
				return entities.RetailPayment{}, ErrPaymentNotPending
			}
			return entities.RetailPayment{}, err
		}
		log.Printf("[retail][usecase] settle signature mismatch payment_id=%s", paymentID)
		return entities.RetailPayment{}, ErrInvalidSignature
	}

	paid, err := u.paymentRepo.UpdateStatus(ctx, p.ID, entities.PaymentStatusPending, entities.PaymentStatusPaid, gatewayPaymentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.RetailPayment{}, ErrPaymentNotPending
		}
		return entities.RetailPayment{}, err
	}

	if err := u.applySale(ctx, paid); err != nil {
		switch {
		case errors.Is(err, entities.ErrInsufficientQuantity), errors.Is(err, entities.ErrInvalidState):
			log.Printf("[retail][usecase] settle oversold payment_id=%s batch_id=%s", paid.ID, paid.BatchID)
		case errors.Is(err, ErrConcurrentUpdate):
			log.Printf("[retail][usecase] settle order not applied after retries payment_id=%s batch_id=%s", paid.ID, paid.BatchID)
		default:
			return entities.RetailPayment{}, err
		}
		flagged, ferr := u.paymentRepo.MarkRefundDue(ctx, paid.ID)
		if ferr != nil {
			return entities.RetailPayment{}, ferr
		}
		return flagged, ErrOversoldRefundDue
	}

	log.Printf("[retail][usecase] settle success payment_id=%s batch_id=%s quantity=%d", paid.ID, paid.BatchID, paid.Quantity)
	return paid, nil
}

func (u *RetailUseCase) GetPayment(ctx context.Context, id string) (entities.RetailPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RetailPayment{}, ErrInvalidPaymentID
	}

	p, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return entities.RetailPayment{}, err
	}
	if p.ID == "" {
		return entities.RetailPayment{}, ErrRetailPaymentNotFound
	}
	return p, nil
}

// ListBatchPayments returns every settlement attempt recorded against a
// batch, PENDING and FAILED included.
func (u *RetailUseCase) ListBatchPayments(ctx context.Context, batchID string) ([]entities.RetailPayment, error) {
	if _, err := u.loadBatch(ctx, batchID); err != nil {
		return nil, err
	}
	return u.paymentRepo.ListByBatchID(ctx, batchID)
}

// applySale decrements the batch under the compare-and-swap, retrying on
// version conflicts so concurrent settlements interleave as if serialized.
func (u *RetailUseCase) applySale(ctx context.Context, p entities.RetailPayment) error {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		b, err := u.loadBatch(ctx, p.BatchID)
		if err != nil {
			return err
		}

		updated, err := b.ApplyRetailSale(p.RetailerID, p.Quantity, p.PricePerKg, p.ID, time.Now().UTC())
		if err != nil {
			return err
		}

		if _, err := u.batchRepo.Save(ctx, updated); err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				continue
			}
			return err
		}
		return nil
	}
	return ErrConcurrentUpdate
}

func (u *RetailUseCase) loadBatch(ctx context.Context, id string) (entities.Batch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Batch{}, ErrInvalidBatchID
	}
	b, err := u.batchRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.ID == "" {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func paymentCurrency() string {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_CURRENCY")); v != "" {
		return v
	}
	return defaultCurrency
}
