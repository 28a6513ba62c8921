package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingsparks/models"
	bookingService "weddingsparks/services/booking"
)

// stubBookingService returns canned results so the handler's status code
// mapping can be exercised without a database.
type stubBookingService struct {
	err     error
	booking *models.Booking
	detail  *models.BookingDetail
}

func (s *stubBookingService) CreateBooking(_ context.Context, _ string, _ models.CreateBookingInput) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) SetBookingStatus(_ context.Context, _, _, _ string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetBooking(_ context.Context, _, _ string) (*models.BookingDetail, error) {
	return s.detail, s.err
}

func (s *stubBookingService) ListBookingsForCustomer(_ context.Context, _ string) ([]models.BookingDetail, error) {
	return nil, s.err
}

func (s *stubBookingService) ListBookingsForVendor(_ context.Context, _ string) ([]models.BookingDetail, error) {
	return nil, s.err
}

func (s *stubBookingService) CreatePaymentOrder(_ context.Context, _ string, _ models.PaymentOrderInput) (*models.PaymentOrder, error) {
	return nil, s.err
}

func (s *stubBookingService) VerifyAndLinkPayment(_ context.Context, _ string, _ models.PaymentVerificationInput) (*models.Payment, error) {
	return nil, s.err
}

func (s *stubBookingService) GetPayments(_ context.Context, _, _ string) ([]models.Payment, error) {
	return nil, s.err
}

func (s *stubBookingService) RefundPayment(_ context.Context, _ string) (*models.Payment, error) {
	return nil, s.err
}

func newBookingRouter(svc bookingService.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &BookingHandler{Service: svc}
	auth := func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	}
	r.POST("/bookings", auth, h.Create)
	r.GET("/bookings/:id", auth, h.Get)
	r.PATCH("/bookings/:id/status", auth, h.SetStatus)
	return r
}

const validBookingBody = `{
	"customerName": "Asha",
	"location": {"country": "India", "state": "Karnataka", "city": "Bengaluru"},
	"fromDate": "2026-03-04",
	"toDate": "2026-03-05",
	"vendorId": "vendor-1",
	"listingId": "listing-1"
}`

func TestCreateBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusCreated},
		{"validation", bookingService.NewValidationError("bad dates"), http.StatusBadRequest},
		{"conflict", bookingService.NewConflictError("dates taken"), http.StatusConflict},
		{"not found", bookingService.NewNotFoundError("vendor"), http.StatusNotFound},
		{"forbidden", bookingService.NewAuthorizationError("not yours"), http.StatusForbidden},
		{"bad signature", bookingService.NewAuthenticationError("bad signature"), http.StatusUnauthorized},
		{"dependency down", bookingService.NewDependencyError("mongo", assert.AnError), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubBookingService{err: tc.err, booking: &models.Booking{ID: "b-1"}}
			r := newBookingRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validBookingBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCreateBookingHandlerRejectsBadJSON(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingHandler(t *testing.T) {
	detail := &models.BookingDetail{Booking: models.Booking{ID: "b-1", Status: models.BookingPending}}
	r := newBookingRouter(&stubBookingService{detail: detail})

	req := httptest.NewRequest(http.MethodGet, "/bookings/b-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"b-1"`)
}

func TestSetStatusHandler(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{ID: "b-1", Status: models.BookingApproved}}
	r := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/status", strings.NewReader(`{"status":"Approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Approved"`)
}
