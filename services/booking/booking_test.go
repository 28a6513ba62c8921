package booking

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "weddingsparks/database/repository/booking"
	"weddingsparks/models"
	"weddingsparks/services/notification"
	"weddingsparks/services/payment"
)

const testGatewaySecret = "test-gateway-secret"

// fakeBookingRepo is an in-memory BookingRepository with the same
// check-and-insert atomicity as the Mongo transaction.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) hasOverlapLocked(vendorID string, from, to time.Time) bool {
	for _, b := range r.bookings {
		if b.VendorID == vendorID && b.Overlaps(from, to) {
			return true
		}
	}
	return false
}

func (r *fakeBookingRepo) HasOverlap(_ context.Context, vendorID string, from, to time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasOverlapLocked(vendorID, from, to), nil
}

func (r *fakeBookingRepo) CreateIfAvailable(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasOverlapLocked(b.VendorID, b.FromDate, b.ToDate) {
		return bookingRepo.ErrOverlap
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) ListByVendor(_ context.Context, vendorID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.VendorID == vendorID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FromDate.After(out[j].FromDate) })
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusFromPending(_ context.Context, id, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingPending {
		return false, nil
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return true, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SetRefreshTokenHash(_ context.Context, id, hash string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshTokenHash = hash
	}
	return nil
}

func (r *fakeUserRepo) ClearRefreshToken(_ context.Context, id string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshTokenHash = ""
	}
	return nil
}

func (r *fakeUserRepo) SetOnboardingCompleted(_ context.Context, id string, completed bool) error {
	if u, ok := r.users[id]; ok {
		u.OnboardingCompleted = completed
	}
	return nil
}

type fakeListingRepo struct {
	listings map[string]*models.Listing
}

func (r *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *fakeListingRepo) GetByVendor(_ context.Context, vendorID string) ([]models.Listing, int64, error) {
	var out []models.Listing
	for _, l := range r.listings {
		if l.VendorID == vendorID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Browse(_ context.Context, _ models.ListingFilter) ([]models.Listing, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) Categories(_ context.Context) ([]string, error) {
	return nil, nil
}

// fakePaymentRepo mirrors the transactional link: the payment insert and
// the booking flip happen under one lock.
type fakePaymentRepo struct {
	bookings *fakeBookingRepo
	payments map[string]*models.Payment
}

func (r *fakePaymentRepo) CreateAndLinkBooking(_ context.Context, p *models.Payment) error {
	r.bookings.mu.Lock()
	defer r.bookings.mu.Unlock()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	r.payments[p.ID] = &cp
	if b, ok := r.bookings.bookings[p.BookingID]; ok {
		b.PaymentID = p.ID
		b.IsPaymentDone = true
	}
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Find(_ context.Context, bookingID, customerID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if bookingID != "" && p.BookingID != bookingID {
			continue
		}
		if customerID != "" && p.CustomerID != customerID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, id, status string) error {
	if p, ok := r.payments[id]; ok {
		p.Status = status
	}
	return nil
}

type fakeGateway struct {
	orders  []int64
	refunds []string
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountPaise int64, _, _ string) (string, error) {
	g.orders = append(g.orders, amountPaise)
	return "order_" + uuid.NewString(), nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return payment.VerifySignature(testGatewaySecret, orderID, paymentID, signature)
}

func (g *fakeGateway) Refund(_ context.Context, gatewayPaymentID string, _ int64) error {
	g.refunds = append(g.refunds, gatewayPaymentID)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []notification.PaymentSuccessPayload
}

func (n *fakeNotifier) PaymentSuccess(_ context.Context, p notification.PaymentSuccessPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, p)
	return nil
}

type testEnv struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
	gateway  *fakeGateway
	notifier *fakeNotifier

	customerID string
	vendorID   string
	listingID  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	customerID := uuid.NewString()
	vendorID := uuid.NewString()
	listingID := uuid.NewString()

	users := &fakeUserRepo{users: map[string]*models.User{
		customerID: {ID: customerID, Name: "Asha", Email: "asha@example.com", Role: models.RoleCustomer},
		vendorID:   {ID: vendorID, Name: "Ravi Events", Email: "ravi@example.com", Role: models.RoleVendor, OnboardingCompleted: true},
	}}
	listings := &fakeListingRepo{listings: map[string]*models.Listing{
		listingID: {
			ID:       listingID,
			VendorID: vendorID,
			Name:     "Grand Decor Package",
			Category: "Decoration",
			Location: models.Location{Country: "India", State: "Karnataka", City: "Bengaluru"},
			Price:    10000,
		},
	}}

	bookings := newFakeBookingRepo()
	payments := &fakePaymentRepo{bookings: bookings, payments: make(map[string]*models.Payment)}
	gateway := &fakeGateway{}
	notifier := &fakeNotifier{}

	svc := &DefaultBookingService{
		Repo:     bookings,
		Payments: payments,
		Users:    users,
		Listings: listings,
		Gateway:  gateway,
		Notifier: notifier,
	}
	return &testEnv{
		svc:        svc,
		bookings:   bookings,
		payments:   payments,
		gateway:    gateway,
		notifier:   notifier,
		customerID: customerID,
		vendorID:   vendorID,
		listingID:  listingID,
	}
}

func (e *testEnv) input(from, to string) models.CreateBookingInput {
	return models.CreateBookingInput{
		CustomerName: "Asha",
		Location:     models.Location{Country: "India", State: "Karnataka", City: "Bengaluru"},
		FromDate:     from,
		ToDate:       to,
		VendorID:     e.vendorID,
		ListingID:    e.listingID,
	}
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, env.customerID, b.CustomerID)
	assert.Equal(t, 2, b.Days())
	assert.Equal(t, time.UTC, b.FromDate.Location())
	assert.False(t, b.IsPaymentDone)

	stored, err := env.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input models.CreateBookingInput
	}{
		{"missing name", func() models.CreateBookingInput {
			in := env.input("2026-03-04", "2026-03-05")
			in.CustomerName = ""
			return in
		}()},
		{"incomplete location", func() models.CreateBookingInput {
			in := env.input("2026-03-04", "2026-03-05")
			in.Location.City = ""
			return in
		}()},
		{"bad date format", env.input("04-03-2026", "2026-03-05")},
		{"reversed range", env.input("2026-03-05", "2026-03-04")},
		{"zero-length range", env.input("2026-03-04", "2026-03-04")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.svc.CreateBooking(ctx, env.customerID, tc.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreateBookingOverlap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-01", "2026-03-03"))
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to string
		conflict bool
	}{
		{"straddles existing", "2026-03-02", "2026-03-05", true},
		{"shares boundary day", "2026-03-03", "2026-03-05", true},
		{"contained within", "2026-03-01", "2026-03-02", true},
		{"starts next day", "2026-03-04", "2026-03-05", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.svc.CreateBooking(ctx, env.customerID, env.input(tc.from, tc.to))
			if tc.conflict {
				var cErr *ConflictError
				require.ErrorAs(t, err, &cErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("unknown vendor", func(t *testing.T) {
		in := env.input("2026-03-04", "2026-03-05")
		in.VendorID = uuid.NewString()
		_, err := env.svc.CreateBooking(ctx, env.customerID, in)
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})

	t.Run("customer posing as vendor", func(t *testing.T) {
		in := env.input("2026-03-04", "2026-03-05")
		in.VendorID = env.customerID
		_, err := env.svc.CreateBooking(ctx, env.customerID, in)
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})

	t.Run("listing of another vendor", func(t *testing.T) {
		otherVendor := uuid.NewString()
		env2 := newTestEnv(t)
		in := env2.input("2026-03-04", "2026-03-05")
		env2.svc.Listings.(*fakeListingRepo).listings[in.ListingID].VendorID = otherVendor
		_, err := env2.svc.CreateBooking(ctx, env2.customerID, in)
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.CreateBooking(ctx, env.customerID, env.input("2026-06-10", "2026-06-12"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent booking must win")
}

func TestSetBookingStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)

	t.Run("invalid status value", func(t *testing.T) {
		_, err := env.svc.SetBookingStatus(ctx, env.vendorID, b.ID, "Cancelled")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("another vendor", func(t *testing.T) {
		_, err := env.svc.SetBookingStatus(ctx, uuid.NewString(), b.ID, models.BookingApproved)
		var aErr *AuthorizationError
		require.ErrorAs(t, err, &aErr)
	})

	t.Run("approve", func(t *testing.T) {
		updated, err := env.svc.SetBookingStatus(ctx, env.vendorID, b.ID, models.BookingApproved)
		require.NoError(t, err)
		assert.Equal(t, models.BookingApproved, updated.Status)
	})

	t.Run("decision is one-shot", func(t *testing.T) {
		_, err := env.svc.SetBookingStatus(ctx, env.vendorID, b.ID, models.BookingRejected)
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)

		stored, err := env.bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingApproved, stored.Status)
	})
}

func TestGetBookingOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)

	t.Run("customer sees own booking", func(t *testing.T) {
		detail, err := env.svc.GetBooking(ctx, env.customerID, b.ID)
		require.NoError(t, err)
		require.NotNil(t, detail.Vendor)
		require.NotNil(t, detail.Listing)
		assert.Equal(t, env.vendorID, detail.Vendor.ID)
	})

	t.Run("vendor sees incoming booking", func(t *testing.T) {
		_, err := env.svc.GetBooking(ctx, env.vendorID, b.ID)
		require.NoError(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		_, err := env.svc.GetBooking(ctx, uuid.NewString(), b.ID)
		var aErr *AuthorizationError
		require.ErrorAs(t, err, &aErr)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := env.svc.GetBooking(ctx, env.customerID, uuid.NewString())
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
}

func TestListBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-01", "2026-03-02"))
	require.NoError(t, err)
	second, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-04-01", "2026-04-02"))
	require.NoError(t, err)

	forCustomer, err := env.svc.ListBookingsForCustomer(ctx, env.customerID)
	require.NoError(t, err)
	require.Len(t, forCustomer, 2)

	forVendor, err := env.svc.ListBookingsForVendor(ctx, env.vendorID)
	require.NoError(t, err)
	require.Len(t, forVendor, 2)
	assert.Equal(t, second.ID, forVendor[0].ID, "vendor list is sorted by start date descending")
	assert.Equal(t, first.ID, forVendor[1].ID)
}

func TestCreatePaymentOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)

	// 2 days at 10000 per day.
	const total = 20000.0

	t.Run("amount mismatch", func(t *testing.T) {
		_, err := env.svc.CreatePaymentOrder(ctx, env.customerID, models.PaymentOrderInput{BookingID: b.ID, Amount: 5000})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("foreign booking", func(t *testing.T) {
		_, err := env.svc.CreatePaymentOrder(ctx, uuid.NewString(), models.PaymentOrderInput{BookingID: b.ID, Amount: total})
		var aErr *AuthorizationError
		require.ErrorAs(t, err, &aErr)
	})

	t.Run("order opened in paise", func(t *testing.T) {
		order, err := env.svc.CreatePaymentOrder(ctx, env.customerID, models.PaymentOrderInput{BookingID: b.ID, Amount: total})
		require.NoError(t, err)
		assert.Equal(t, total, order.Amount)
		assert.Equal(t, "INR", order.Currency)
		assert.Equal(t, "receipt_"+b.ID, order.Receipt)
		require.Len(t, env.gateway.orders, 1)
		assert.Equal(t, int64(2000000), env.gateway.orders[0])
	})
}

func TestVerifyAndLinkPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)

	order, err := env.svc.CreatePaymentOrder(ctx, env.customerID, models.PaymentOrderInput{BookingID: b.ID, Amount: 20000})
	require.NoError(t, err)

	gatewayPaymentID := "pay_" + uuid.NewString()

	t.Run("tampered signature writes nothing", func(t *testing.T) {
		_, err := env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
			OrderID:   order.OrderID,
			PaymentID: gatewayPaymentID,
			Signature: "deadbeef",
			BookingID: b.ID,
			Amount:    20000,
		})
		var authErr *AuthenticationError
		require.ErrorAs(t, err, &authErr)

		assert.Empty(t, env.payments.payments)
		stored, _ := env.bookings.GetByID(ctx, b.ID)
		assert.False(t, stored.IsPaymentDone)
		assert.Empty(t, env.notifier.payloads)
	})

	t.Run("understated amount writes nothing", func(t *testing.T) {
		sig := payment.Sign(testGatewaySecret, order.OrderID, gatewayPaymentID)
		_, err := env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
			OrderID:   order.OrderID,
			PaymentID: gatewayPaymentID,
			Signature: sig,
			BookingID: b.ID,
			Amount:    1,
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)

		assert.Empty(t, env.payments.payments)
		stored, _ := env.bookings.GetByID(ctx, b.ID)
		assert.False(t, stored.IsPaymentDone)
	})

	t.Run("valid signature links payment", func(t *testing.T) {
		sig := payment.Sign(testGatewaySecret, order.OrderID, gatewayPaymentID)
		p, err := env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
			OrderID:   order.OrderID,
			PaymentID: gatewayPaymentID,
			Signature: sig,
			BookingID: b.ID,
			Amount:    20000,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPaid, p.Status)
		assert.Equal(t, b.ID, p.BookingID)
		assert.Equal(t, 20000.0, p.Amount, "stored amount is the recomputed booking total")

		stored, _ := env.bookings.GetByID(ctx, b.ID)
		assert.True(t, stored.IsPaymentDone)
		assert.Equal(t, p.ID, stored.PaymentID)

		require.Len(t, env.notifier.payloads, 1)
		assert.Equal(t, "asha@example.com", env.notifier.payloads[0].CustomerEmail)
		assert.Equal(t, 20000.0, env.notifier.payloads[0].Amount)
	})

	t.Run("second payment is refused", func(t *testing.T) {
		sig := payment.Sign(testGatewaySecret, order.OrderID, gatewayPaymentID)
		_, err := env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
			OrderID:   order.OrderID,
			PaymentID: gatewayPaymentID,
			Signature: sig,
			BookingID: b.ID,
			Amount:    20000,
		})
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
	})
}

func TestRefundPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)
	order, err := env.svc.CreatePaymentOrder(ctx, env.customerID, models.PaymentOrderInput{BookingID: b.ID, Amount: 20000})
	require.NoError(t, err)

	gatewayPaymentID := "pay_" + uuid.NewString()
	sig := payment.Sign(testGatewaySecret, order.OrderID, gatewayPaymentID)
	p, err := env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
		OrderID:   order.OrderID,
		PaymentID: gatewayPaymentID,
		Signature: sig,
		BookingID: b.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	refunded, err := env.svc.RefundPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, refunded.Status)
	require.Len(t, env.gateway.refunds, 1)
	assert.Equal(t, gatewayPaymentID, env.gateway.refunds[0])

	_, err = env.svc.RefundPayment(ctx, p.ID)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
}

func TestGetPayments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, env.customerID, env.input("2026-03-04", "2026-03-05"))
	require.NoError(t, err)
	order, err := env.svc.CreatePaymentOrder(ctx, env.customerID, models.PaymentOrderInput{BookingID: b.ID, Amount: 20000})
	require.NoError(t, err)

	gatewayPaymentID := "pay_" + uuid.NewString()
	sig := payment.Sign(testGatewaySecret, order.OrderID, gatewayPaymentID)
	_, err = env.svc.VerifyAndLinkPayment(ctx, env.customerID, models.PaymentVerificationInput{
		OrderID:   order.OrderID,
		PaymentID: gatewayPaymentID,
		Signature: sig,
		BookingID: b.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	byCustomer, err := env.svc.GetPayments(ctx, "", env.customerID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	byBooking, err := env.svc.GetPayments(ctx, b.ID, env.customerID)
	require.NoError(t, err)
	assert.Len(t, byBooking, 1)

	other, err := env.svc.GetPayments(ctx, uuid.NewString(), env.customerID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
