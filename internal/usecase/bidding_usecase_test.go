package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"
	mock_interfaces "agritrade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func biddingBatch(id string, closing time.Time) entities.Batch {
	b := createdBatch(id)
	b.Status = entities.BatchStatusBidding
	b.Bidding = entities.BiddingRecord{
		Status:      entities.BiddingStatusOpen,
		ClosingDate: closing,
	}
	return b
}

func TestBiddingUseCase_PlaceBid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testDistributor.UserID, entities.RoleDistributor).Return("dist-profile-a", nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", time.Now().UTC().Add(time.Hour)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Batch{})).DoAndReturn(
			func(_ context.Context, b entities.Batch) (entities.Batch, error) {
				if len(b.Bidding.Bids) != 1 || b.Bidding.Bids[0].BidPricePerKg != 11 {
					t.Fatalf("expected one bid at 11, got %+v", b.Bidding.Bids)
				}
				return b, nil
			},
		)

		res, err := uc.PlaceBid(context.Background(), testDistributor, "b-1", 11)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Bidding.Bids) != 1 {
			t.Fatalf("expected one bid, got %d", len(res.Bidding.Bids))
		}
	})

	t.Run("retries on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		closing := time.Now().UTC().Add(time.Hour)
		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testDistributor.UserID, entities.RoleDistributor).Return("dist-profile-a", nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", closing), nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Batch{}, interfaces.ErrVersionConflict),
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Batch) (entities.Batch, error) { return b, nil },
			),
		)

		if _, err := uc.PlaceBid(context.Background(), testDistributor, "b-1", 11); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exhausted retries surface concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		closing := time.Now().UTC().Add(time.Hour)
		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testDistributor.UserID, entities.RoleDistributor).Return("dist-profile-a", nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", closing), nil).Times(casMaxAttempts)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Batch{}, interfaces.ErrVersionConflict).Times(casMaxAttempts)

		_, err := uc.PlaceBid(context.Background(), testDistributor, "b-1", 11)
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("expired window is lazily closed and the bid rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testDistributor.UserID, entities.RoleDistributor).Return("dist-profile-a", nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", time.Now().UTC().Add(-time.Minute)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Batch{})).DoAndReturn(
			func(_ context.Context, b entities.Batch) (entities.Batch, error) {
				if b.Bidding.Status != entities.BiddingStatusClosed {
					t.Fatalf("expected lazy close persisted, got %s", b.Bidding.Status)
				}
				return b, nil
			},
		)

		_, err := uc.PlaceBid(context.Background(), testDistributor, "b-1", 11)
		if !errors.Is(err, entities.ErrBiddingClosed) {
			t.Fatalf("expected ErrBiddingClosed, got %v", err)
		}
	})

	t.Run("lazy close tolerates a concurrent close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testDistributor.UserID, entities.RoleDistributor).Return("dist-profile-a", nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", time.Now().UTC().Add(-time.Minute)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Batch{}, interfaces.ErrVersionConflict)

		_, err := uc.PlaceBid(context.Background(), testDistributor, "b-1", 11)
		if !errors.Is(err, entities.ErrBiddingClosed) {
			t.Fatalf("expected ErrBiddingClosed despite conflict, got %v", err)
		}
	})

	t.Run("unknown distributor profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
		uc := NewBiddingUseCase(repo, registry)

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), "ghost", entities.RoleDistributor).Return("", errors.New("no profile"))

		_, err := uc.PlaceBid(context.Background(), entities.Actor{UserID: "ghost", Role: entities.RoleDistributor}, "b-1", 11)
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestBiddingUseCase_StopBidding(t *testing.T) {
	t.Run("resolves winner on an open window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		uc := NewBiddingUseCase(repo, nil)

		now := time.Now().UTC()
		b := biddingBatch("b-1", now.Add(time.Hour))
		b.Bidding.Bids = []entities.Bid{
			{DistributorID: "dist-a", BidPricePerKg: 11, BidDate: now.Add(-2 * time.Minute)},
			{DistributorID: "dist-b", BidPricePerKg: 12, BidDate: now.Add(-time.Minute)},
		}

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Batch{})).DoAndReturn(
			func(_ context.Context, saved entities.Batch) (entities.Batch, error) {
				if saved.Status != entities.BatchStatusAwaitingSettlement || saved.Bidding.Winner != "dist-b" {
					t.Fatalf("unexpected stop result: %+v", saved)
				}
				return saved, nil
			},
		)

		res, err := uc.StopBidding(context.Background(), testFarmer, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Bidding.Winner != "dist-b" {
			t.Fatalf("expected winner dist-b, got %s", res.Bidding.Winner)
		}
	})

	t.Run("persists lazy close then resolves on the re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		uc := NewBiddingUseCase(repo, nil)

		now := time.Now().UTC()
		expired := biddingBatch("b-1", now.Add(-time.Minute))
		expired.Bidding.Bids = []entities.Bid{
			{DistributorID: "dist-a", BidPricePerKg: 11, BidDate: now.Add(-time.Hour)},
		}
		closed := expired
		closed.Bidding.Status = entities.BiddingStatusClosed
		closed.Version = 2

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(expired, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Batch) (entities.Batch, error) {
					if b.Bidding.Status != entities.BiddingStatusClosed {
						t.Fatalf("expected closed window persisted first")
					}
					return b, nil
				},
			),
			repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(closed, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Batch) (entities.Batch, error) { return b, nil },
			),
		)

		res, err := uc.StopBidding(context.Background(), testFarmer, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Bidding.Winner != "dist-a" {
			t.Fatalf("expected winner dist-a, got %s", res.Bidding.Winner)
		}
	})

	t.Run("no bids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBatchRepository(ctrl)
		uc := NewBiddingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(biddingBatch("b-1", time.Now().UTC().Add(time.Hour)), nil)

		_, err := uc.StopBidding(context.Background(), testFarmer, "b-1")
		if !errors.Is(err, entities.ErrNoBids) {
			t.Fatalf("expected ErrNoBids, got %v", err)
		}
	})
}

func TestBiddingUseCase_CompleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBatchRepository(ctrl)
	uc := NewBiddingUseCase(repo, nil)

	now := time.Now().UTC()
	b := biddingBatch("b-1", now.Add(-time.Hour))
	b.Status = entities.BatchStatusAwaitingSettlement
	b.Bidding.Status = entities.BiddingStatusClosed
	b.Bidding.Winner = "dist-b"
	b.Bidding.Bids = []entities.Bid{
		{DistributorID: "dist-a", BidPricePerKg: 11, BidDate: now.Add(-3 * time.Hour)},
		{DistributorID: "dist-b", BidPricePerKg: 12, BidDate: now.Add(-2 * time.Hour)},
	}

	repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Batch{})).DoAndReturn(
		func(_ context.Context, saved entities.Batch) (entities.Batch, error) {
			if saved.Status != entities.BatchStatusSoldToDistributor {
				t.Fatalf("expected sold_to_distributor, got %s", saved.Status)
			}
			if saved.CurrentOwner() != "dist-b" || saved.PricePerKg != 12 {
				t.Fatalf("expected ownership transfer at winning price: %+v", saved)
			}
			return saved, nil
		},
	)

	res, err := uc.CompleteTransaction(context.Background(), testFarmer, "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TradeHistory) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(res.TradeHistory))
	}
}
