package booking

import (
	"context"

	"weddingsparks/models"

	bookingRepo "weddingsparks/database/repository/booking"
	listingRepo "weddingsparks/database/repository/listing"
	paymentRepo "weddingsparks/database/repository/payment"
	userRepo "weddingsparks/database/repository/user"
	"weddingsparks/services/notification"
	"weddingsparks/services/payment"
)

// BookingService is the reservation and payment engine. All operations
// take the authenticated actor's user ID; ownership checks happen here,
// not in the transport layer.
type BookingService interface {
	// CreateBooking validates the request and inserts a Pending booking,
	// failing with a ConflictError when the vendor already has a booking
	// overlapping the requested dates.
	CreateBooking(ctx context.Context, customerID string, input models.CreateBookingInput) (*models.Booking, error)
	// SetBookingStatus lets the booked vendor approve or reject a Pending
	// booking. The decision is one-shot.
	SetBookingStatus(ctx context.Context, vendorID, bookingID, status string) (*models.Booking, error)
	// GetBooking returns one booking with related records resolved,
	// visible only to the owning customer or the booked vendor.
	GetBooking(ctx context.Context, actorID, bookingID string) (*models.BookingDetail, error)
	// ListBookingsForCustomer returns the customer's bookings, newest
	// first, with related records resolved.
	ListBookingsForCustomer(ctx context.Context, customerID string) ([]models.BookingDetail, error)
	// ListBookingsForVendor returns the vendor's incoming bookings sorted
	// by start date descending.
	ListBookingsForVendor(ctx context.Context, vendorID string) ([]models.BookingDetail, error)

	// CreatePaymentOrder opens a gateway order for a booking's amount.
	CreatePaymentOrder(ctx context.Context, customerID string, input models.PaymentOrderInput) (*models.PaymentOrder, error)
	// VerifyAndLinkPayment checks the gateway checkout signature, then
	// records the payment and marks the booking paid in one transaction.
	VerifyAndLinkPayment(ctx context.Context, customerID string, input models.PaymentVerificationInput) (*models.Payment, error)
	// GetPayments returns payments filtered by booking and/or customer.
	GetPayments(ctx context.Context, bookingID, customerID string) ([]models.Payment, error)
	// RefundPayment reverses a Paid payment through the gateway.
	RefundPayment(ctx context.Context, paymentID string) (*models.Payment, error)
}

// DefaultBookingService is the production implementation backed by Mongo
// repositories, the payment gateway and the notification queue.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Users    userRepo.UserRepository
	Listings listingRepo.ListingRepository
	Gateway  payment.Gateway
	Notifier notification.Notifier
}

var _ BookingService = (*DefaultBookingService)(nil)
