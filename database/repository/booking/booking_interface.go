package bookingRepo

import (
	"context"
	"errors"
	"time"

	"weddingsparks/models"
)

// ErrOverlap is returned by CreateIfAvailable when the vendor already has
// a booking sharing at least one day with the requested range.
var ErrOverlap = errors.New("overlapping booking dates")

// BookingRepository defines persistence for booking records. GetByID
// returns (nil, nil) when no record matches.
type BookingRepository interface {
	// HasOverlap reports whether any booking for the vendor overlaps
	// [from, to] with inclusive bounds.
	HasOverlap(ctx context.Context, vendorID string, from, to time.Time) (bool, error)
	// CreateIfAvailable inserts the booking only if no overlapping booking
	// for the same vendor exists; the check and the insert happen in one
	// transaction so concurrent writers cannot both succeed. Returns
	// ErrOverlap on conflict.
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByCustomer returns the customer's bookings, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// ListByVendor returns the vendor's bookings sorted by start date
	// descending.
	ListByVendor(ctx context.Context, vendorID string) ([]models.Booking, error)
	// UpdateStatusFromPending moves a Pending booking to the given status.
	// It reports false when the booking was missing or no longer Pending.
	UpdateStatusFromPending(ctx context.Context, id, status string) (bool, error)
}
