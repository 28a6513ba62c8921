package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway abstracts the payment processor consumed by the booking engine:
// order creation, checkout signature verification and refunds.
type Gateway interface {
	// CreateOrder opens a gateway order for the given amount in the
	// smallest currency unit and returns the gateway order ID.
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
	// VerifySignature reports whether signature is the gateway's HMAC over
	// the order/payment pair.
	VerifySignature(orderID, paymentID, signature string) bool
	// Refund reverses a captured payment.
	Refund(ctx context.Context, gatewayPaymentID string, amountPaise int64) error
}

// Sign computes the checkout signature the gateway attaches to a
// completed payment: hex(HMAC-SHA256(secret, orderID|paymentID)).
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares the expected signature against the supplied
// one in constant time.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// RazorpayGateway implements Gateway against the Razorpay API.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

// NewRazorpayGateway builds a gateway from API credentials.
func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, secret),
		secret: secret,
	}
}

// CreateOrder opens a Razorpay order and returns its ID.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create failed: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order create returned no id")
	}
	return orderID, nil
}

// VerifySignature checks the checkout signature against the key secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.secret, orderID, paymentID, signature)
}

// Refund reverses a captured payment for the given amount.
func (g *RazorpayGateway) Refund(ctx context.Context, gatewayPaymentID string, amountPaise int64) error {
	data := map[string]interface{}{}
	if _, err := g.client.Payment.Refund(gatewayPaymentID, int(amountPaise), data, nil); err != nil {
		return fmt.Errorf("razorpay refund failed: %w", err)
	}
	return nil
}
