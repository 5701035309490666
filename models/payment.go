package models

import "time"

// Payment methods.
const (
	PaymentMethodOnline = "online"
	PaymentMethodCOD    = "cod"
)

// Payment attempt states. CREATED is transient; COMPLETED, CANCELLED and
// FAILED are terminal.
const (
	PaymentStatusCreated       = "CREATED"
	PaymentStatusOnlinePending = "ONLINE_PENDING"
	PaymentStatusCODPending    = "COD_PENDING"
	PaymentStatusVerifying     = "VERIFYING"
	PaymentStatusCompleted     = "COMPLETED"
	PaymentStatusCancelled     = "CANCELLED"
	PaymentStatusFailed        = "FAILED"
)

// Customer carries the booker identity collected before payment.
type Customer struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// PaymentAttempt is one run of the payment state machine, persisted so that
// cancellation and reconciliation can find the slots it reserved.
type PaymentAttempt struct {
	PaymentID      string    `bson:"payment_id" json:"payment_id"`
	OrderID        string    `bson:"order_id" json:"order_id"`
	GatewayOrderID string    `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	KeyID          string    `bson:"key_id,omitempty" json:"key_id,omitempty"`
	UserID         string    `bson:"user_id" json:"user_id"`
	SessionID      string    `bson:"session_id" json:"session_id"`
	SportID        string    `bson:"sports_id" json:"sports_id"`
	Method         string    `bson:"payment_method" json:"payment_method"`
	Status         string    `bson:"status" json:"status"`
	Amount         float64   `bson:"amount" json:"amount"`
	Currency       string    `bson:"currency" json:"currency"`
	NoOfPlayers    int       `bson:"no_of_players" json:"no_of_players"`
	Customer       Customer  `bson:"customer" json:"customer"`
	Slots          []Slot    `bson:"slots" json:"slots"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Terminal reports whether the attempt has reached a final state.
func (p *PaymentAttempt) Terminal() bool {
	switch p.Status {
	case PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentOrderResponse is returned by booking creation. Amount is in minor
// currency units, as the gateway checkout expects.
type PaymentOrderResponse struct {
	PaymentID       string `json:"payment_id"`
	OrderID         string `json:"order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id,omitempty"`
	RazorpayOrderID string `json:"razorpay_order_id,omitempty"`
}

// VerifyPaymentRequest carries the gateway success payload back for
// server-side signature verification.
type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderID           string `json:"order_id"`
	PaymentID         string `json:"payment_id" binding:"required"`
}
