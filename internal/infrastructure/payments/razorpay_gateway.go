package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var (
	ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
	ErrGatewayNotConfigured       = errors.New("razorpay gateway not configured")
	ErrOrderCreateFailed          = errors.New("gateway order creation failed")
)

// RazorpayGateway creates gateway orders and verifies capture signatures.
//
// Signature scheme (shared with the gateway): HMAC-SHA256 over
// "orderId|paymentId" keyed with the key secret, hex encoded. Verification is
// local; no network call is involved, so it is safe to run between the batch
// read and the conditional write.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	mockMode  bool
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keySecret: keySecret, mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}, nil
}

// CreateOrder registers the quoted amount with the gateway and returns the
// gateway order id the buyer pays against.
func (g *RazorpayGateway) CreateOrder(_ context.Context, amountMinorUnits int64, currency string, receipt string) (string, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock order created order_id=%s amount=%d %s", id, amountMinorUnits, currency)
		return id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrGatewayNotConfigured
	}
	log.Printf("[payment][gateway] order create start amount=%d %s receipt=%s", amountMinorUnits, currency, receipt)

	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] order create failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		log.Printf("[payment][gateway] order create returned no id body=%v", body)
		return "", ErrOrderCreateFailed
	}
	log.Printf("[payment][gateway] order create success order_id=%s", orderID)
	return orderID, nil
}

// VerifySignature recomputes the expected signature for the order/payment pair
// and compares in constant time.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g == nil || g.keySecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
