package booking

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway is the narrow boundary to the external payment provider:
// open an order before checkout, verify the signed success payload after.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// RazorpayGateway implements PaymentGateway against the Razorpay API.
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
	secret string
}

// NewRazorpayGateway builds a gateway client from API credentials.
func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder opens a gateway order for the given amount in minor currency
// units and returns the gateway's order id.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("gateway order creation failed: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("gateway order response missing id")
	}
	return orderID, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway computes over
// "order_id|payment_id" with the key secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
