package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddingsparks/models"
	bookingService "weddingsparks/services/booking"
)

// PaymentHandler exposes the checkout endpoints. Payments ride on the
// booking engine so the taxonomy mapping is shared.
type PaymentHandler struct {
	Service bookingService.BookingService
}

// CreateOrder opens a gateway order for a booking.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var input models.PaymentOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.Service.CreatePaymentOrder(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Verify checks the checkout signature and records the payment.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var input models.PaymentVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Service.VerifyAndLinkPayment(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "payment": p})
}

// List returns the caller's payments, optionally filtered by booking.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Service.GetPayments(c.Request.Context(), c.Query("bookingId"), c.GetString("userID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// Refund reverses a paid payment. Admin only, enforced in routing.
func (h *PaymentHandler) Refund(c *gin.Context) {
	p, err := h.Service.RefundPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment refunded", "payment": p})
}
