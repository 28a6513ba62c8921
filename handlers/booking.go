package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddingsparks/models"
	bookingService "weddingsparks/services/booking"
)

// BookingHandler exposes the reservation and payment endpoints.
type BookingHandler struct {
	Service bookingService.BookingService
}

// respondBookingError maps the booking engine's error taxonomy onto HTTP
// status codes.
func respondBookingError(c *gin.Context, err error) {
	var (
		validation *bookingService.ValidationError
		conflict   *bookingService.ConflictError
		notFound   *bookingService.NotFoundError
		forbidden  *bookingService.AuthorizationError
		badSig     *bookingService.AuthenticationError
		dependency *bookingService.DependencyError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Message})
	case errors.As(err, &badSig):
		c.JSON(http.StatusUnauthorized, gin.H{"error": badSig.Message})
	case errors.As(err, &dependency):
		getLogger(c).Error("Booking engine dependency failure", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		getLogger(c).Error("Booking engine failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Create handles booking creation.
func (h *BookingHandler) Create(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// SetStatus handles the vendor's approve/reject decision.
func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.SetBookingStatus(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Get returns one booking with related records resolved.
func (h *BookingHandler) Get(c *gin.Context) {
	detail, err := h.Service.GetBooking(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListForCustomer returns the caller's bookings, newest first.
func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	details, err := h.Service.ListBookingsForCustomer(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": details})
}

// ListForVendor returns the caller's incoming bookings.
func (h *BookingHandler) ListForVendor(c *gin.Context) {
	details, err := h.Service.ListBookingsForVendor(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": details})
}
