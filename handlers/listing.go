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
	listingService "weddingsparks/services/listing"
)

// ListingHandler exposes listing publication and browsing endpoints.
type ListingHandler struct {
	Service listingService.ListingService
}

// Create publishes a listing. Accepts multipart form data with up to ten
// images.
func (h *ListingHandler) Create(c *gin.Context) {
	logger := getLogger(c)

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	input := listingService.CreateListingInput{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Price:       price,
		Description: c.PostForm("description"),
		Location: models.Location{
			Country: c.PostForm("country"),
			State:   c.PostForm("state"),
			City:    c.PostForm("city"),
		},
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At most 10 images are allowed"})
			return
		}
		for _, file := range files {
			dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err != nil {
				logger.Error("Failed to buffer uploaded image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
				return
			}
			defer os.Remove(dst)
			input.ImagePaths = append(input.ImagePaths, dst)
		}
	}

	l, err := h.Service.CreateListing(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		switch {
		case errors.Is(err, listingService.ErrMissingFields), errors.Is(err, listingService.ErrInvalidCategory),
			errors.Is(err, listingService.ErrNoImages):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, listingService.ErrNotOnboarded):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, listingService.ErrImageUploadFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Listing creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, l)
}

// Browse returns a filtered page of listings. Public.
func (h *ListingHandler) Browse(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter := models.ListingFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		VendorID: c.Query("vendorId"),
		Page:     page,
		Limit:    limit,
	}

	result, err := h.Service.Browse(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Listing browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing browse failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one listing with its vendor. Public.
func (h *ListingHandler) Get(c *gin.Context) {
	detail, err := h.Service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, listingService.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Listing lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing lookup failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Mine returns the authenticated vendor's listings.
func (h *ListingHandler) Mine(c *gin.Context) {
	listings, total, err := h.Service.GetVendorListings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		getLogger(c).Error("Vendor listing fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing fetch failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": total})
}

// Categories returns the category names currently in use. Public.
func (h *ListingHandler) Categories(c *gin.Context) {
	infos, err := h.Service.Categories(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Category fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Category fetch failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": infos})
}
