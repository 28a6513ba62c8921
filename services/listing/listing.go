package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	listingRepo "weddingsparks/database/repository/listing"
	userRepo "weddingsparks/database/repository/user"
	vendorRepo "weddingsparks/database/repository/vendor"
	"weddingsparks/models"
	"weddingsparks/services/storage"
	"weddingsparks/utils"
)

var (
	ErrNotOnboarded      = errors.New("vendor onboarding is not complete")
	ErrInvalidCategory   = errors.New("unknown listing category")
	ErrMissingFields     = errors.New("name, category, location and price are required")
	ErrListingNotFound   = errors.New("listing not found")
	ErrNoImages          = errors.New("at least one image is required")
	ErrImageUploadFailed = errors.New("listing image upload failed")
)

// CreateListingInput is the listing creation request. ImagePaths point at
// temp files already received by the transport layer.
type CreateListingInput struct {
	Name        string
	Category    string
	Location    models.Location
	Price       float64
	Description string
	ImagePaths  []string
}

// BrowseResult is a page of public listings.
type BrowseResult struct {
	Listings []models.Listing `json:"listings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// ListingService manages vendor listings and public browsing.
type ListingService interface {
	// CreateListing publishes a listing for an onboarded vendor and
	// mirrors it onto the vendor profile's service list.
	CreateListing(ctx context.Context, vendorID string, input CreateListingInput) (*models.Listing, error)
	// Browse returns a filtered page of listings, public.
	Browse(ctx context.Context, filter models.ListingFilter) (*BrowseResult, error)
	// GetListing returns one listing with its vendor resolved.
	GetListing(ctx context.Context, id string) (*models.ListingDetail, error)
	// GetVendorListings returns all listings owned by one vendor.
	GetVendorListings(ctx context.Context, vendorID string) ([]models.Listing, int64, error)
	// Categories returns the category names currently in use, with slugs.
	Categories(ctx context.Context) ([]models.CategoryInfo, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo    listingRepo.ListingRepository
	Users   userRepo.UserRepository
	Vendors vendorRepo.VendorRepository
	Storage storage.Service
}

var _ ListingService = (*DefaultListingService)(nil)

// CreateListing publishes a listing. Creation is gated on completed
// vendor onboarding; the listing is also denormalized onto the vendor
// profile.
func (s *DefaultListingService) CreateListing(ctx context.Context, vendorID string, input CreateListingInput) (*models.Listing, error) {
	logger := utils.GetLogger().With(zap.String("vendorID", vendorID))

	if input.Name == "" || input.Category == "" || input.Price <= 0 || !input.Location.IsComplete() {
		return nil, ErrMissingFields
	}
	if !models.IsValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	if len(input.ImagePaths) == 0 {
		return nil, ErrNoImages
	}

	u, err := s.Users.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != models.RoleVendor || !u.OnboardingCompleted {
		return nil, ErrNotOnboarded
	}

	images := make([]string, 0, len(input.ImagePaths))
	if s.Storage != nil {
		for _, path := range input.ImagePaths {
			url, err := s.Storage.UploadFile(ctx, path, "weddingsparks/listings")
			if err != nil {
				logger.Error("Listing image upload failed", zap.Error(err))
				return nil, ErrImageUploadFailed
			}
			images = append(images, url)
		}
	}

	l := &models.Listing{
		ID:          uuid.NewString(),
		VendorID:    vendorID,
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Price:       input.Price,
		Description: input.Description,
		Images:      images,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, err
	}

	entry := models.ServiceEntry{
		Category:    l.Category,
		Description: l.Description,
		Price:       l.Price,
		Images:      l.Images,
	}
	if err := s.Vendors.AppendService(ctx, vendorID, entry); err != nil {
		// The listing itself is live; the profile mirror can lag.
		logger.Warn("Failed to mirror listing onto vendor profile", zap.String("listingID", l.ID), zap.Error(err))
	}

	logger.Info("Listing created", zap.String("listingID", l.ID), zap.String("category", l.Category))
	return l, nil
}

// Browse returns a filtered, paginated page of listings.
func (s *DefaultListingService) Browse(ctx context.Context, filter models.ListingFilter) (*BrowseResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 50 {
		filter.Limit = 10
	}

	listings, total, err := s.Repo.Browse(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &BrowseResult{
		Listings: listings,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// GetListing returns one listing with its vendor summary.
func (s *DefaultListingService) GetListing(ctx context.Context, id string) (*models.ListingDetail, error) {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrListingNotFound
	}

	detail := &models.ListingDetail{Listing: *l}
	if u, err := s.Users.GetByID(ctx, l.VendorID); err == nil && u != nil {
		summary := u.Summary()
		detail.Vendor = &summary
	}
	return detail, nil
}

// GetVendorListings returns all listings owned by one vendor.
func (s *DefaultListingService) GetVendorListings(ctx context.Context, vendorID string) ([]models.Listing, int64, error) {
	return s.Repo.GetByVendor(ctx, vendorID)
}

// Categories returns the category names currently in use.
func (s *DefaultListingService) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	names, err := s.Repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]models.CategoryInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, models.CategoryInfo{Name: name, Slug: models.CategorySlug(name)})
	}
	return infos, nil
}
