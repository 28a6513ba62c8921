package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddingsparks/models"
	vendorService "weddingsparks/services/vendor"
)

// VendorHandler exposes vendor onboarding and review endpoints.
type VendorHandler struct {
	Service vendorService.VendorService
}

// AddDetails records the vendor's one-time business onboarding.
func (h *VendorHandler) AddDetails(c *gin.Context) {
	var req struct {
		BusinessDetails models.BusinessDetails `json:"businessDetails"`
		Policies        models.VendorPolicies  `json:"policies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Service.AddVendorDetails(c.Request.Context(), c.GetString("userID"), vendorService.OnboardingInput{
		BusinessDetails: req.BusinessDetails,
		Policies:        req.Policies,
	})
	if err != nil {
		switch {
		case errors.Is(err, vendorService.ErrMissingBusiness):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, vendorService.ErrNotVendor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, vendorService.ErrAlreadyOnboarded):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("Vendor onboarding failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Vendor onboarding failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetDetails returns a vendor profile by user ID. Public.
func (h *VendorHandler) GetDetails(c *gin.Context) {
	detail, err := h.Service.GetVendorDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, vendorService.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Vendor lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Vendor lookup failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// AddReview appends a customer review to a listing's vendor. Accepts
// multipart form data with optional images.
func (h *VendorHandler) AddReview(c *gin.Context) {
	logger := getLogger(c)

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	input := vendorService.ReviewInput{
		ListingID: c.PostForm("listingId"),
		Rating:    rating,
		Comment:   c.PostForm("comment"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err != nil {
				logger.Error("Failed to buffer review image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
				return
			}
			defer os.Remove(dst)
			input.ImagePaths = append(input.ImagePaths, dst)
		}
	}

	review, err := h.Service.AddReview(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		switch {
		case errors.Is(err, vendorService.ErrInvalidRating), errors.Is(err, vendorService.ErrMissingReviewBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, vendorService.ErrReviewOwnListing):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, vendorService.ErrListingNotFound), errors.Is(err, vendorService.ErrVendorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Review creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Review creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListingReviews returns the reviews for one listing. Public.
func (h *VendorHandler) ListingReviews(c *gin.Context) {
	reviews, average, err := h.Service.GetListingReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, vendorService.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Review fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Review fetch failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "averageRating": average})
}
