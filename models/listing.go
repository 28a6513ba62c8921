package models

import (
	"strings"
	"time"
)

// ListingCategories is the fixed set of wedding-service categories a
// listing may advertise.
var ListingCategories = []string{
	"Catering",
	"Photography",
	"Videography",
	"Decoration",
	"Music/DJ",
	"Makeup Artists",
	"Bridal Wear",
	"Groom Wear",
	"Event Planning",
	"Transportation",
	"Florists",
	"Lighting & Effects",
	"Wedding Cakes",
	"Invitations & Stationery",
	"Entertainment",
	"Security Services",
	"Officiants",
	"Wedding Venues",
	"Destination Wedding Planners",
	"Wedding Rentals",
	"Bar Services",
	"Wedding Photobooks/Albums",
	"Henna Artists",
	"Pre-Wedding Shoots",
	"Honeymoon Planners",
	"Gift Registry Services",
	"Hair Stylists",
	"Sound & Audio",
}

// IsValidCategory reports whether category is one of the allowed listing
// categories (case-insensitive).
func IsValidCategory(category string) bool {
	for _, c := range ListingCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// Listing is a vendor's advertised service offering.
type Listing struct {
	ID          string    `bson:"id" json:"id"`
	VendorID    string    `bson:"vendor_id" json:"vendorId"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Location    Location  `bson:"location" json:"location"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string  `bson:"images" json:"images"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ListingSummary is the subset of listing fields embedded in booking
// responses.
type ListingSummary struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Location Location `bson:"location" json:"location"`
	Price    float64  `bson:"price" json:"price"`
}

// Summary returns the embeddable view of the listing.
func (l *Listing) Summary() ListingSummary {
	return ListingSummary{ID: l.ID, Name: l.Name, Location: l.Location, Price: l.Price}
}

// ListingDetail is a listing resolved with its vendor for display.
type ListingDetail struct {
	Listing
	Vendor *UserSummary `json:"vendor,omitempty"`
}

// ListingFilter narrows public listing browsing.
type ListingFilter struct {
	Category string
	City     string
	VendorID string
	Page     int
	Limit    int
}

// CategoryInfo pairs a category name with its URL-friendly slug.
type CategoryInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategorySlug derives the URL-friendly slug for a category name.
func CategorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
