package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"
)

var (
	ErrBatchNotFound      = errors.New("batch not found")
	ErrInvalidBatchID     = errors.New("invalid batch id")
	ErrBatchAlreadyExists = errors.New("batch already exists")
	ErrConcurrentUpdate   = errors.New("batch was modified concurrently, retry")
)

// casMaxAttempts bounds the optimistic-concurrency retry loop on the two hot
// paths (placeBid, settle). Everything else is a single atomic attempt.
const casMaxAttempts = 3

// IBatchUseCase exposes the farmer-facing batch lifecycle operations plus
// reads shared by every role.

type IBatchUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in entities.NewBatchInput) (entities.Batch, error)
	GetByID(ctx context.Context, id string) (entities.Batch, error)
	List(ctx context.Context) ([]entities.Batch, error)
	Enlist(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error)
	CompleteBatch(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error)
}

type BatchUseCase struct {
	repo     interfaces.IBatchRepository
	registry interfaces.IRoleRegistry
}

var _ IBatchUseCase = (*BatchUseCase)(nil)

func NewBatchUseCase(repo interfaces.IBatchRepository, registry interfaces.IRoleRegistry) *BatchUseCase {
	return &BatchUseCase{repo: repo, registry: registry}
}

func (u *BatchUseCase) Create(ctx context.Context, actor entities.Actor, in entities.NewBatchInput) (entities.Batch, error) {
	log.Printf("[batch][usecase] create start batch_id=%s actor=%s", in.BatchID, actor.UserID)

	farmerID, err := u.registry.ResolveRoleEntity(ctx, actor.UserID, entities.RoleFarmer)
	if err != nil {
		log.Printf("[batch][usecase] farmer profile resolution failed actor=%s err=%v", actor.UserID, err)
		return entities.Batch{}, entities.ErrForbidden
	}
	in.FarmerID = farmerID

	b, err := entities.NewBatch(actor, in, time.Now().UTC())
	if err != nil {
		return entities.Batch{}, err
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[batch][usecase] create failed batch_id=%s err=%v", in.BatchID, err)
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Batch{}, ErrBatchAlreadyExists
		}
		return entities.Batch{}, err
	}
	log.Printf("[batch][usecase] create success id=%s batch_id=%s", created.ID, created.BatchID)
	return created, nil
}

func (u *BatchUseCase) GetByID(ctx context.Context, id string) (entities.Batch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Batch{}, ErrInvalidBatchID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.ID == "" {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func (u *BatchUseCase) List(ctx context.Context) ([]entities.Batch, error) {
	return u.repo.List(ctx)
}

func (u *BatchUseCase) Enlist(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error) {
	return u.transition(ctx, "enlist", id, func(b entities.Batch, now time.Time) (entities.Batch, error) {
		return b.Enlist(actor, now)
	})
}

func (u *BatchUseCase) CompleteBatch(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error) {
	return u.transition(ctx, "complete", id, func(b entities.Batch, now time.Time) (entities.Batch, error) {
		return b.Complete(actor, now)
	})
}

// transition runs one read -> pure transition -> compare-and-swap attempt.
// Version conflicts surface as ErrConcurrentUpdate; retrying is the caller's
// decision, not the state machine's.
func (u *BatchUseCase) transition(
	ctx context.Context,
	name, id string,
	apply func(b entities.Batch, now time.Time) (entities.Batch, error),
) (entities.Batch, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}

	updated, err := apply(b, time.Now().UTC())
	if err != nil {
		log.Printf("[batch][usecase] %s rejected id=%s status=%s err=%v", name, id, b.Status, err)
		return entities.Batch{}, err
	}

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Batch{}, ErrConcurrentUpdate
		}
		log.Printf("[batch][usecase] %s save failed id=%s err=%v", name, id, err)
		return entities.Batch{}, err
	}
	log.Printf("[batch][usecase] %s success id=%s status=%s", name, id, saved.Status)
	return saved, nil
}
