package models

import "time"

// Payment statuses.
const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"
)

// Payment records a verified gateway payment linked to a booking.
type Payment struct {
	ID               string    `bson:"id" json:"id"`
	BookingID        string    `bson:"booking_id" json:"bookingId"`
	CustomerID       string    `bson:"customer_id" json:"customerId"`
	Amount           float64   `bson:"amount" json:"amount"`
	Status           string    `bson:"status" json:"status"`
	OrderID          string    `bson:"order_id" json:"orderId"`
	GatewayPaymentID string    `bson:"gateway_payment_id,omitempty" json:"gatewayPaymentId,omitempty"`
	Signature        string    `bson:"signature,omitempty" json:"-"`
	TransactionDate  time.Time `bson:"transaction_date" json:"transactionDate"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// PaymentSummary is the subset of payment fields embedded in booking
// responses.
type PaymentSummary struct {
	ID              string    `bson:"id" json:"id"`
	Status          string    `bson:"status" json:"status"`
	Amount          float64   `bson:"amount" json:"amount"`
	TransactionDate time.Time `bson:"transaction_date" json:"transactionDate"`
}

// Summary returns the embeddable view of the payment.
func (p *Payment) Summary() PaymentSummary {
	return PaymentSummary{ID: p.ID, Status: p.Status, Amount: p.Amount, TransactionDate: p.TransactionDate}
}

// PaymentOrder is the gateway order handed back to the client so it can
// drive the checkout flow.
type PaymentOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// PaymentOrderInput is the request payload for creating a gateway order.
type PaymentOrderInput struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
}

// PaymentVerificationInput carries the gateway's checkout result back for
// signature verification.
type PaymentVerificationInput struct {
	OrderID   string  `json:"orderId"`
	PaymentID string  `json:"paymentId"`
	Signature string  `json:"signature"`
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
}
