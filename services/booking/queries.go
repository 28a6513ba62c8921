package booking

import (
	"context"

	"go.uber.org/zap"

	"weddingsparks/models"
	"weddingsparks/utils"
)

// resolveDetail loads the related records for one booking. Missing
// references degrade to nil fields rather than failing the whole read.
func (s *DefaultBookingService) resolveDetail(ctx context.Context, b models.Booking) models.BookingDetail {
	logger := utils.GetLogger()
	detail := models.BookingDetail{Booking: b}

	if vendor, err := s.Users.GetByID(ctx, b.VendorID); err != nil {
		logger.Warn("Failed to resolve booking vendor", zap.String("bookingID", b.ID), zap.Error(err))
	} else if vendor != nil {
		v := vendor.Summary()
		detail.Vendor = &v
	}

	if customer, err := s.Users.GetByID(ctx, b.CustomerID); err != nil {
		logger.Warn("Failed to resolve booking customer", zap.String("bookingID", b.ID), zap.Error(err))
	} else if customer != nil {
		c := customer.Summary()
		detail.Customer = &c
	}

	if listing, err := s.Listings.GetByID(ctx, b.ListingID); err != nil {
		logger.Warn("Failed to resolve booking listing", zap.String("bookingID", b.ID), zap.Error(err))
	} else if listing != nil {
		l := listing.Summary()
		detail.Listing = &l
	}

	if b.PaymentID != "" {
		if pay, err := s.Payments.GetByID(ctx, b.PaymentID); err != nil {
			logger.Warn("Failed to resolve booking payment", zap.String("bookingID", b.ID), zap.Error(err))
		} else if pay != nil {
			p := pay.Summary()
			detail.Payment = &p
		}
	}

	return detail
}

func (s *DefaultBookingService) resolveDetails(ctx context.Context, bookings []models.Booking) []models.BookingDetail {
	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, s.resolveDetail(ctx, b))
	}
	return details
}

// GetBooking returns one booking with related records resolved. Only the
// owning customer or the booked vendor may read it.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actorID, bookingID string) (*models.BookingDetail, error) {
	if bookingID == "" {
		return nil, NewValidationError("booking id is required")
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewDependencyError("booking lookup failed", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking")
	}
	if b.CustomerID != actorID && b.VendorID != actorID {
		return nil, NewAuthorizationError("booking belongs to another account")
	}

	detail := s.resolveDetail(ctx, *b)
	return &detail, nil
}

// ListBookingsForCustomer returns the customer's bookings, newest first.
func (s *DefaultBookingService) ListBookingsForCustomer(ctx context.Context, customerID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, NewDependencyError("customer booking list failed", err)
	}
	return s.resolveDetails(ctx, bookings), nil
}

// ListBookingsForVendor returns the vendor's incoming bookings sorted by
// start date descending.
func (s *DefaultBookingService) ListBookingsForVendor(ctx context.Context, vendorID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, NewDependencyError("vendor booking list failed", err)
	}
	return s.resolveDetails(ctx, bookings), nil
}
