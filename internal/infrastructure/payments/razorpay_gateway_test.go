package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := &RazorpayGateway{keySecret: "test-secret"}

	t.Run("accepts a valid signature", func(t *testing.T) {
		sig := signPayload("test-secret", "order_123", "pay_456")
		if !g.VerifySignature("order_123", "pay_456", sig) {
			t.Fatalf("expected valid signature to verify")
		}
	})

	t.Run("rejects a tampered payment id", func(t *testing.T) {
		sig := signPayload("test-secret", "order_123", "pay_456")
		if g.VerifySignature("order_123", "pay_457", sig) {
			t.Fatalf("expected tampered payment id to fail")
		}
	})

	t.Run("rejects a signature from another secret", func(t *testing.T) {
		sig := signPayload("other-secret", "order_123", "pay_456")
		if g.VerifySignature("order_123", "pay_456", sig) {
			t.Fatalf("expected wrong-secret signature to fail")
		}
	})

	t.Run("rejects when no secret is configured", func(t *testing.T) {
		empty := &RazorpayGateway{}
		if empty.VerifySignature("order_123", "pay_456", "anything") {
			t.Fatalf("expected verification to fail without a secret")
		}
	})
}

func TestRazorpayGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewRazorpayGateway("", "test-secret")
	if err != nil {
		t.Fatalf("mock mode must not require credentials: %v", err)
	}

	orderID, err := g.CreateOrder(context.Background(), 280000, "INR", "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(orderID, "order_mock_") {
		t.Fatalf("expected mock order id, got %s", orderID)
	}

	// The signature scheme still works against mock orders.
	sig := signPayload("test-secret", orderID, "pay_456")
	if !g.VerifySignature(orderID, "pay_456", sig) {
		t.Fatalf("expected signature to verify in mock mode")
	}
}

func TestNewRazorpayGateway_MissingCredentials(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("RAZORPAY_MOCK", "")

	if _, err := NewRazorpayGateway("", ""); err == nil {
		t.Fatalf("expected error without credentials")
	}
}
