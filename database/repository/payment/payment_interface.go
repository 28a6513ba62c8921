package paymentRepo

import (
	"context"

	"weddingsparks/models"
)

// PaymentRepository defines persistence for payment records. GetByID
// returns (nil, nil) when no record matches.
type PaymentRepository interface {
	// CreateAndLinkBooking inserts the payment and marks its booking paid
	// in a single transaction, so a payment row can never exist without
	// the booking reflecting it.
	CreateAndLinkBooking(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Payment, error)
	// Find filters by bookingID and/or customerID; empty strings are
	// ignored.
	Find(ctx context.Context, bookingID, customerID string) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
