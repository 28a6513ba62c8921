package notification

import (
	"context"
	"time"
)

// PaymentSuccessPayload carries everything the payment confirmation email
// needs.
type PaymentSuccessPayload struct {
	CustomerEmail string    `json:"customerEmail"`
	CustomerName  string    `json:"customerName"`
	VendorName    string    `json:"vendorName"`
	ListingName   string    `json:"listingName"`
	City          string    `json:"city"`
	FromDate      time.Time `json:"fromDate"`
	ToDate        time.Time `json:"toDate"`
	Amount        float64   `json:"amount"`
}

// Notifier is the fire-and-forget notification surface the booking engine
// consumes. Implementations must not block on delivery; failures are the
// notifier's problem, not the caller's.
type Notifier interface {
	PaymentSuccess(ctx context.Context, payload PaymentSuccessPayload) error
}
