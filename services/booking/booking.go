package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "weddingsparks/database/repository/booking"
	"weddingsparks/models"
	"weddingsparks/utils"
)

// dateLayout is the wire format for booking dates. Parsed values are
// pinned to UTC midnight so range comparisons are calendar-day exact.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// CreateBooking validates the request, checks availability and inserts a
// Pending booking. The availability check is re-run inside the insert
// transaction, so two concurrent requests for overlapping dates cannot
// both succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger().With(zap.String("customerID", customerID))

	if input.CustomerName == "" || input.VendorID == "" || input.ListingID == "" ||
		input.FromDate == "" || input.ToDate == "" {
		return nil, NewValidationError("customerName, vendorId, listingId, fromDate and toDate are required")
	}
	if !input.Location.IsComplete() {
		return nil, NewValidationError("location requires country, state and city")
	}

	from, err := parseDate(input.FromDate)
	if err != nil {
		return nil, NewValidationError("fromDate must be formatted as YYYY-MM-DD")
	}
	to, err := parseDate(input.ToDate)
	if err != nil {
		return nil, NewValidationError("toDate must be formatted as YYYY-MM-DD")
	}
	// The range is strict: a booking spans at least one night.
	if !to.After(from) {
		return nil, NewValidationError("toDate must be after fromDate")
	}

	// Availability is reported before referential checks so a taken date
	// range answers with a conflict even if the rest of the request is
	// questionable.
	taken, err := s.Repo.HasOverlap(ctx, input.VendorID, from, to)
	if err != nil {
		return nil, NewDependencyError("booking availability check failed", err)
	}
	if taken {
		return nil, NewConflictError("vendor already booked for the selected dates")
	}

	vendor, err := s.Users.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, NewDependencyError("vendor lookup failed", err)
	}
	if vendor == nil || vendor.Role != models.RoleVendor {
		return nil, NewNotFoundError("vendor")
	}

	listing, err := s.Listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, NewDependencyError("listing lookup failed", err)
	}
	if listing == nil {
		return nil, NewNotFoundError("listing")
	}
	if listing.VendorID != input.VendorID {
		return nil, NewNotFoundError("listing")
	}

	b := &models.Booking{
		ID:           uuid.NewString(),
		CustomerName: input.CustomerName,
		Location:     input.Location,
		FromDate:     from,
		ToDate:       to,
		VendorID:     input.VendorID,
		CustomerID:   customerID,
		ListingID:    input.ListingID,
		Status:       models.BookingPending,
	}

	if err := s.Repo.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, NewConflictError("vendor already booked for the selected dates")
		}
		return nil, NewDependencyError("booking insert failed", err)
	}

	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("vendorID", b.VendorID),
		zap.Time("fromDate", b.FromDate),
		zap.Time("toDate", b.ToDate))
	return b, nil
}

// SetBookingStatus records the vendor's one-shot decision on a Pending
// booking.
func (s *DefaultBookingService) SetBookingStatus(ctx context.Context, vendorID, bookingID, status string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, NewValidationError("booking id is required")
	}
	if !models.IsDecisionStatus(status) {
		return nil, NewValidationError("status must be Approved or Rejected")
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewDependencyError("booking lookup failed", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking")
	}
	if b.VendorID != vendorID {
		return nil, NewAuthorizationError("booking belongs to another vendor")
	}
	if b.Status != models.BookingPending {
		return nil, NewConflictError("booking has already been " + b.Status)
	}

	// The update re-checks Pending in its filter, so a concurrent decision
	// loses cleanly instead of overwriting.
	ok, err := s.Repo.UpdateStatusFromPending(ctx, bookingID, status)
	if err != nil {
		return nil, NewDependencyError("booking status update failed", err)
	}
	if !ok {
		return nil, NewConflictError("booking is no longer pending")
	}

	b.Status = status
	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("status", status),
		zap.String("vendorID", vendorID))
	return b, nil
}
