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

func retailListedBatch(id string) entities.Batch {
	b := createdBatch(id)
	b.Status = entities.BatchStatusListedForRetailers
	b.PricePerKg = 14
	b.TradeHistory = append(b.TradeHistory, entities.TradeEntry{
		Owner:      "dist-profile-a",
		PricePerKg: 12,
		UpdatedAt:  time.Now().UTC().Add(-30 * time.Minute),
	})
	return b
}

func pendingPayment(id, batchID string) entities.RetailPayment {
	now := time.Now().UTC().Add(-10 * time.Minute)
	return entities.RetailPayment{
		ID:             id,
		RetailerID:     "ret-profile-1",
		BatchID:        batchID,
		Quantity:       200,
		PricePerKg:     14,
		TotalAmount:    2800,
		Status:         entities.PaymentStatusPending,
		GatewayOrderID: "order_123",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newRetailMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIBatchRepository, *mock_interfaces.MockIRetailPaymentRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIRoleRegistry, *RetailUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	batchRepo := mock_interfaces.NewMockIBatchRepository(ctrl)
	paymentRepo := mock_interfaces.NewMockIRetailPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIRoleRegistry(ctrl)
	uc := NewRetailUseCase(batchRepo, paymentRepo, gateway, registry)
	return ctrl, batchRepo, paymentRepo, gateway, registry, uc
}

func TestRetailUseCase_ReservePurchase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, registry, uc := newRetailMocks(t)
		defer ctrl.Finish()

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testRetailer.UserID, entities.RoleRetailer).Return("ret-profile-1", nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), int64(280000), "INR", gomock.Any()).Return("order_123", nil)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RetailPayment{})).DoAndReturn(
			func(_ context.Context, p entities.RetailPayment) (entities.RetailPayment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusPending {
					t.Fatalf("expected pending payment with id, got %+v", p)
				}
				if p.TotalAmount != 2800 || p.PricePerKg != 14 || p.GatewayOrderID != "order_123" {
					t.Fatalf("unexpected payment amounts: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.ReservePurchase(context.Background(), testRetailer, "b-1", 200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RetailerID != "ret-profile-1" || res.Quantity != 200 {
			t.Fatalf("unexpected reservation: %+v", res)
		}
	})

	t.Run("reservation does not touch the batch", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, registry, uc := newRetailMocks(t)
		defer ctrl.Finish()

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testRetailer.UserID, entities.RoleRetailer).Return("ret-profile-1", nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("order_123", nil)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.RetailPayment) (entities.RetailPayment, error) { return p, nil },
		)
		// No batchRepo.Save expectation: quantity is only committed at settlement.

		if _, err := uc.ReservePurchase(context.Background(), testRetailer, "b-1", 200); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non-retailer", func(t *testing.T) {
		ctrl, _, _, _, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		_, err := uc.ReservePurchase(context.Background(), testFarmer, "b-1", 10)
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("rejects quantity above available", func(t *testing.T) {
		ctrl, batchRepo, _, _, registry, uc := newRetailMocks(t)
		defer ctrl.Finish()

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testRetailer.UserID, entities.RoleRetailer).Return("ret-profile-1", nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil)

		_, err := uc.ReservePurchase(context.Background(), testRetailer, "b-1", 501)
		if !errors.Is(err, entities.ErrInsufficientQuantity) {
			t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
		}
	})

	t.Run("rejects batch not listed for retailers", func(t *testing.T) {
		ctrl, batchRepo, _, _, registry, uc := newRetailMocks(t)
		defer ctrl.Finish()

		registry.EXPECT().ResolveRoleEntity(gomock.Any(), testRetailer.UserID, entities.RoleRetailer).Return("ret-profile-1", nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(createdBatch("b-1"), nil)

		_, err := uc.ReservePurchase(context.Background(), testRetailer, "b-1", 10)
		if !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestRetailUseCase_SettlePayment(t *testing.T) {
	t.Run("success commits the sale", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		paid := p
		paid.Status = entities.PaymentStatusPaid
		paid.GatewayPaymentID = "rzp_pay_1"

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "sig").Return(true)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusPaid, "rzp_pay_1").Return(paid, nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil)
		batchRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Batch{})).DoAndReturn(
			func(_ context.Context, b entities.Batch) (entities.Batch, error) {
				if b.AvailableQuantity != 300 {
					t.Fatalf("expected 300 left, got %d", b.AvailableQuantity)
				}
				if len(b.RetailOrders) != 1 || b.RetailOrders[0].PaymentID != "pay-1" {
					t.Fatalf("expected retail order recorded, got %+v", b.RetailOrders)
				}
				return b, nil
			},
		)

		res, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", res.Status)
		}
	})

	t.Run("signature mismatch flips to FAILED exactly once", func(t *testing.T) {
		ctrl, _, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		failed := p
		failed.Status = entities.PaymentStatusFailed

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "bad-sig").Return(false)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusFailed, "rzp_pay_1").Return(failed, nil)

		_, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "bad-sig")
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl, _, paymentRepo, _, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		p.Status = entities.PaymentStatusPaid
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)

		_, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("lost the PENDING flip race", func(t *testing.T) {
		ctrl, _, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "sig").Return(true)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusPaid, "rzp_pay_1").
			Return(entities.RetailPayment{}, interfaces.ErrStatusConflict)

		_, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("oversold after capture flags refund due", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		paid := p
		paid.Status = entities.PaymentStatusPaid
		paid.GatewayPaymentID = "rzp_pay_1"
		flagged := paid
		flagged.RefundDue = true

		drained := retailListedBatch("b-1")
		drained.AvailableQuantity = 100

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "sig").Return(true)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusPaid, "rzp_pay_1").Return(paid, nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(drained, nil)
		paymentRepo.EXPECT().MarkRefundDue(gomock.Any(), "pay-1").Return(flagged, nil)

		res, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if !errors.Is(err, ErrOversoldRefundDue) {
			t.Fatalf("expected ErrOversoldRefundDue, got %v", err)
		}
		if !res.RefundDue || res.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID payment flagged refund-due, got %+v", res)
		}
	})

	t.Run("retries exhausted after capture flags refund due", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		paid := p
		paid.Status = entities.PaymentStatusPaid
		paid.GatewayPaymentID = "rzp_pay_1"
		flagged := paid
		flagged.RefundDue = true

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "sig").Return(true)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusPaid, "rzp_pay_1").Return(paid, nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil).Times(casMaxAttempts)
		batchRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Batch{}, interfaces.ErrVersionConflict).Times(casMaxAttempts)
		paymentRepo.EXPECT().MarkRefundDue(gomock.Any(), "pay-1").Return(flagged, nil)

		res, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if !errors.Is(err, ErrOversoldRefundDue) {
			t.Fatalf("expected ErrOversoldRefundDue, got %v", err)
		}
		if !res.RefundDue || res.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID payment flagged refund-due, got %+v", res)
		}
	})

	t.Run("retries the sale on version conflict", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, gateway, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		p := pendingPayment("pay-1", "b-1")
		paid := p
		paid.Status = entities.PaymentStatusPaid
		paid.GatewayPaymentID = "rzp_pay_1"

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(p, nil)
		gateway.EXPECT().VerifySignature("order_123", "rzp_pay_1", "sig").Return(true)
		paymentRepo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusPaid, "rzp_pay_1").Return(paid, nil)
		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil).Times(2)
		gomock.InOrder(
			batchRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Batch{}, interfaces.ErrVersionConflict),
			batchRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Batch) (entities.Batch, error) { return b, nil },
			),
		)

		if _, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRetailUseCase_GatewayNotConfigured(t *testing.T) {
	ctrl, batchRepo, paymentRepo, _, registry, _ := newRetailMocks(t)
	defer ctrl.Finish()
	uc := NewRetailUseCase(batchRepo, paymentRepo, nil, registry)

	t.Run("reserve", func(t *testing.T) {
		_, err := uc.ReservePurchase(context.Background(), testRetailer, "b-1", 10)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("settle", func(t *testing.T) {
		_, err := uc.SettlePayment(context.Background(), "pay-1", "rzp_pay_1", "sig")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestRetailUseCase_ListBatchPayments(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, batchRepo, paymentRepo, _, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		batchRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(retailListedBatch("b-1"), nil)
		paymentRepo.EXPECT().ListByBatchID(gomock.Any(), "b-1").Return([]entities.RetailPayment{
			pendingPayment("pay-1", "b-1"),
		}, nil)

		payments, err := uc.ListBatchPayments(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "pay-1" {
			t.Fatalf("unexpected payments: %+v", payments)
		}
	})

	t.Run("unknown batch", func(t *testing.T) {
		ctrl, batchRepo, _, _, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		batchRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Batch{}, nil)

		_, err := uc.ListBatchPayments(context.Background(), "missing")
		if !errors.Is(err, ErrBatchNotFound) {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})
}

func TestRetailUseCase_GetPayment(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, _, _, _, _, uc := newRetailMocks(t)
		_, err := uc.GetPayment(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, _, paymentRepo, _, _, uc := newRetailMocks(t)
		defer ctrl.Finish()

		paymentRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.RetailPayment{}, nil)

		_, err := uc.GetPayment(context.Background(), "missing")
		if !errors.Is(err, ErrRetailPaymentNotFound) {
			t.Fatalf("expected ErrRetailPaymentNotFound, got %v", err)
		}
	})
}
