package booking

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddingsparks/models"
	"weddingsparks/services/notification"
	"weddingsparks/utils"
)

const paymentCurrency = "INR"

// toPaise converts a rupee amount to the gateway's smallest currency
// unit.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// amountMatches tolerates float noise when comparing rupee amounts.
func amountMatches(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

// CreatePaymentOrder opens a gateway order for a booking. The amount is
// recomputed server-side from the listing price and the booked span; a
// client-supplied amount that disagrees is rejected.
func (s *DefaultBookingService) CreatePaymentOrder(ctx context.Context, customerID string, input models.PaymentOrderInput) (*models.PaymentOrder, error) {
	if input.BookingID == "" {
		return nil, NewValidationError("bookingId is required")
	}
	if input.Amount <= 0 {
		return nil, NewValidationError("amount must be greater than zero")
	}

	b, err := s.Repo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, NewDependencyError("booking lookup failed", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking")
	}
	if b.CustomerID != customerID {
		return nil, NewAuthorizationError("booking belongs to another customer")
	}
	if b.IsPaymentDone {
		return nil, NewConflictError("booking is already paid")
	}

	listing, err := s.Listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, NewDependencyError("listing lookup failed", err)
	}
	if listing == nil {
		return nil, NewNotFoundError("listing")
	}
	expected := listing.Price * float64(b.Days())
	if !amountMatches(input.Amount, expected) {
		return nil, NewValidationError("amount does not match the booking total")
	}

	receipt := "receipt_" + b.ID
	orderID, err := s.Gateway.CreateOrder(ctx, toPaise(expected), paymentCurrency, receipt)
	if err != nil {
		return nil, NewDependencyError("gateway order create failed", err)
	}

	utils.GetLogger().Info("Payment order created",
		zap.String("bookingID", b.ID),
		zap.String("orderID", orderID),
		zap.Float64("amount", expected))
	return &models.PaymentOrder{
		OrderID:  orderID,
		Amount:   expected,
		Currency: paymentCurrency,
		Receipt:  receipt,
	}, nil
}

// VerifyAndLinkPayment checks the gateway checkout signature and, on
// success, records the payment and marks the booking paid in a single
// transaction. A bad signature writes nothing.
func (s *DefaultBookingService) VerifyAndLinkPayment(ctx context.Context, customerID string, input models.PaymentVerificationInput) (*models.Payment, error) {
	logger := utils.GetLogger().With(zap.String("customerID", customerID))

	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" || input.BookingID == "" {
		return nil, NewValidationError("orderId, paymentId, signature and bookingId are required")
	}

	b, err := s.Repo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, NewDependencyError("booking lookup failed", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking")
	}
	if b.CustomerID != customerID {
		return nil, NewAuthorizationError("booking belongs to another customer")
	}
	if b.IsPaymentDone {
		return nil, NewConflictError("booking is already paid")
	}

	// The signature only binds the order/payment pair, so the amount is
	// recomputed here just as at order creation; a client-supplied amount
	// never reaches the record.
	listing, err := s.Listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, NewDependencyError("listing lookup failed", err)
	}
	if listing == nil {
		return nil, NewNotFoundError("listing")
	}
	expected := listing.Price * float64(b.Days())
	if !amountMatches(input.Amount, expected) {
		return nil, NewValidationError("amount does not match the booking total")
	}

	if !s.Gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		logger.Warn("Payment signature verification failed",
			zap.String("bookingID", input.BookingID),
			zap.String("orderID", input.OrderID))
		return nil, NewAuthenticationError("payment signature verification failed")
	}

	now := time.Now().UTC()
	p := &models.Payment{
		ID:               uuid.NewString(),
		BookingID:        b.ID,
		CustomerID:       customerID,
		Amount:           expected,
		Status:           models.PaymentPaid,
		OrderID:          input.OrderID,
		GatewayPaymentID: input.PaymentID,
		Signature:        input.Signature,
		TransactionDate:  now,
	}
	if err := s.Payments.CreateAndLinkBooking(ctx, p); err != nil {
		return nil, NewDependencyError("payment record failed", err)
	}

	logger.Info("Payment verified and linked",
		zap.String("bookingID", b.ID),
		zap.String("paymentID", p.ID),
		zap.Float64("amount", p.Amount))

	s.notifyPaymentSuccess(ctx, b, p)
	return p, nil
}

// notifyPaymentSuccess enqueues the confirmation email. Delivery is best
// effort; a queue failure never fails the payment.
func (s *DefaultBookingService) notifyPaymentSuccess(ctx context.Context, b *models.Booking, p *models.Payment) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()

	customer, err := s.Users.GetByID(ctx, b.CustomerID)
	if err != nil || customer == nil {
		logger.Warn("Skipping payment email, customer lookup failed", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	vendorName := ""
	if vendor, err := s.Users.GetByID(ctx, b.VendorID); err == nil && vendor != nil {
		vendorName = vendor.Name
	}
	listingName := ""
	if listing, err := s.Listings.GetByID(ctx, b.ListingID); err == nil && listing != nil {
		listingName = listing.Name
	}

	payload := notification.PaymentSuccessPayload{
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		VendorName:    vendorName,
		ListingName:   listingName,
		City:          b.Location.City,
		FromDate:      b.FromDate,
		ToDate:        b.ToDate,
		Amount:        p.Amount,
	}
	if err := s.Notifier.PaymentSuccess(ctx, payload); err != nil {
		logger.Warn("Failed to enqueue payment email", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// GetPayments returns payments filtered by booking and/or customer. Empty
// filters are ignored.
func (s *DefaultBookingService) GetPayments(ctx context.Context, bookingID, customerID string) ([]models.Payment, error) {
	payments, err := s.Payments.Find(ctx, bookingID, customerID)
	if err != nil {
		return nil, NewDependencyError("payment list failed", err)
	}
	return payments, nil
}

// RefundPayment reverses a Paid payment through the gateway and marks it
// Refunded.
func (s *DefaultBookingService) RefundPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	if paymentID == "" {
		return nil, NewValidationError("payment id is required")
	}

	p, err := s.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, NewDependencyError("payment lookup failed", err)
	}
	if p == nil {
		return nil, NewNotFoundError("payment")
	}
	if p.Status != models.PaymentPaid {
		return nil, NewConflictError("only paid payments can be refunded")
	}

	if err := s.Gateway.Refund(ctx, p.GatewayPaymentID, toPaise(p.Amount)); err != nil {
		return nil, NewDependencyError("gateway refund failed", err)
	}
	if err := s.Payments.UpdateStatus(ctx, p.ID, models.PaymentRefunded); err != nil {
		return nil, NewDependencyError("payment status update failed", err)
	}

	p.Status = models.PaymentRefunded
	utils.GetLogger().Info("Payment refunded",
		zap.String("paymentID", p.ID),
		zap.Float64("amount", p.Amount))
	return p, nil
}
