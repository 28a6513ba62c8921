package listingRepo

import (
	"context"

	"weddingsparks/models"
)

// ListingRepository defines persistence for vendor listings. Lookup
// methods return (nil, nil) when no record matches.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Listing, int64, error)
	Browse(ctx context.Context, filter models.ListingFilter) ([]models.Listing, int64, error)
	Categories(ctx context.Context) ([]string, error)
}
