package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"
)

// IBiddingUseCase manages the bidding window of a batch: opening it, taking
// competitive distributor bids, resolving the winner and settling ownership.

type IBiddingUseCase interface {
	StartBidding(ctx context.Context, actor entities.Actor, id string, closingDate time.Time) (entities.Batch, error)
	PlaceBid(ctx context.Context, actor entities.Actor, id string, pricePerKg float64) (entities.Batch, error)
	StopBidding(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error)
	CompleteTransaction(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error)
}

type BiddingUseCase struct {
	repo     interfaces.IBatchRepository
	registry interfaces.IRoleRegistry
}

var _ IBiddingUseCase = (*BiddingUseCase)(nil)

func NewBiddingUseCase(repo interfaces.IBatchRepository, registry interfaces.IRoleRegistry) *BiddingUseCase {
	return &BiddingUseCase{repo: repo, registry: registry}
}

func (u *BiddingUseCase) StartBidding(ctx context.Context, actor entities.Actor, id string, closingDate time.Time) (entities.Batch, error) {
	return u.single(ctx, "start-bidding", id, func(b entities.Batch, now time.Time) (entities.Batch, error) {
		return b.StartBidding(actor, closingDate, now)
	})
}

// PlaceBid appends a bid under the per-batch compare-and-swap. Concurrent
// bidders conflict on the version token; losers re-read and retry so no append
// is lost. An expired window is lazily closed (persisted) before the
// triggering bid is rejected.
func (u *BiddingUseCase) PlaceBid(ctx context.Context, actor entities.Actor, id string, pricePerKg float64) (entities.Batch, error) {
	log.Printf("[bidding][usecase] place-bid start id=%s actor=%s price=%.2f", id, actor.UserID, pricePerKg)

	if _, err := u.registry.ResolveRoleEntity(ctx, actor.UserID, entities.RoleDistributor); err != nil {
		log.Printf("[bidding][usecase] distributor profile resolution failed actor=%s err=%v", actor.UserID, err)
		return entities.Batch{}, entities.ErrForbidden
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		b, err := u.load(ctx, id)
		if err != nil {
			return entities.Batch{}, err
		}

		now := time.Now().UTC()
		if b.BiddingExpired(now) {
			if err := u.lazyClose(ctx, b, now); err != nil {
				return entities.Batch{}, err
			}
			return entities.Batch{}, entities.ErrBiddingClosed
		}

		updated, err := b.PlaceBid(actor, pricePerKg, now)
		if err != nil {
			return entities.Batch{}, err
		}

		saved, err := u.repo.Save(ctx, updated)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			log.Printf("[bidding][usecase] place-bid save failed id=%s err=%v", id, err)
			return entities.Batch{}, err
		}
		log.Printf("[bidding][usecase] place-bid success id=%s bids=%d", id, len(saved.Bidding.Bids))
		return saved, nil
	}

	log.Printf("[bidding][usecase] place-bid exhausted retries id=%s", id)
	return entities.Batch{}, ErrConcurrentUpdate
}

// StopBidding resolves the winner. When the deadline already passed, the lazy
// close is persisted first; winner resolution itself stays this explicit call.
func (u *BiddingUseCase) StopBidding(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}

	now := time.Now().UTC()
	if b.BiddingExpired(now) {
		if err := u.lazyClose(ctx, b, now); err != nil {
			return entities.Batch{}, err
		}
		// Re-read so the winner resolution applies on the closed window state.
		if b, err = u.load(ctx, id); err != nil {
			return entities.Batch{}, err
		}
	}

	updated, err := b.StopBidding(actor, now)
	if err != nil {
		log.Printf("[bidding][usecase] stop-bidding rejected id=%s err=%v", id, err)
		return entities.Batch{}, err
	}

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Batch{}, ErrConcurrentUpdate
		}
		return entities.Batch{}, err
	}
	log.Printf("[bidding][usecase] stop-bidding success id=%s winner=%s", id, saved.Bidding.Winner)
	return saved, nil
}

func (u *BiddingUseCase) CompleteTransaction(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error) {
	return u.single(ctx, "complete-transaction", id, func(b entities.Batch, now time.Time) (entities.Batch, error) {
		return b.CompleteTransaction(actor, now)
	})
}

// lazyClose persists the Open -> Closed flip of an expired window. A version
// conflict means a concurrent caller already persisted it, which is the
// idempotent outcome we want.
func (u *BiddingUseCase) lazyClose(ctx context.Context, b entities.Batch, now time.Time) error {
	closed, err := b.CloseBiddingWindow(now)
	if err != nil {
		return err
	}
	if _, err := u.repo.Save(ctx, closed); err != nil && !errors.Is(err, interfaces.ErrVersionConflict) {
		return err
	}
	log.Printf("[bidding][usecase] bidding window lazily closed id=%s", b.ID)
	return nil
}

func (u *BiddingUseCase) load(ctx context.Context, id string) (entities.Batch, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.ID == "" {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func (u *BiddingUseCase) single(
	ctx context.Context,
	name, id string,
	apply func(b entities.Batch, now time.Time) (entities.Batch, error),
) (entities.Batch, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}

	updated, err := apply(b, time.Now().UTC())
	if err != nil {
		log.Printf("[bidding][usecase] %s rejected id=%s status=%s err=%v", name, id, b.Status, err)
		return entities.Batch{}, err
	}

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Batch{}, ErrConcurrentUpdate
		}
		return entities.Batch{}, err
	}
	log.Printf("[bidding][usecase] %s success id=%s status=%s", name, id, saved.Status)
	return saved, nil
}
