package models

import "time"

// BusinessDetails captures the one-time onboarding facts about a vendor's
// business.
type BusinessDetails struct {
	BusinessName      string   `bson:"business_name" json:"businessName"`
	YearsOfExperience int      `bson:"years_of_experience" json:"yearsOfExperience"`
	AreasOfOperation  []string `bson:"areas_of_operation,omitempty" json:"areasOfOperation,omitempty"`
	Certifications    []string `bson:"certifications,omitempty" json:"certifications,omitempty"`
}

// VendorPolicies holds the vendor's customer-facing policy text.
type VendorPolicies struct {
	Cancellation string `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Refund       string `bson:"refund,omitempty" json:"refund,omitempty"`
	PaymentTerms string `bson:"payment_terms,omitempty" json:"paymentTerms,omitempty"`
}

// ServiceEntry is the denormalized copy of a listing kept on the vendor
// profile.
type ServiceEntry struct {
	Category    string   `bson:"category" json:"category"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
}

// Review is a customer review of a vendor's listing, embedded on the
// vendor profile.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	ListingID  string    `bson:"listing_id" json:"listingId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment" json:"comment"`
	Images     []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// VendorProfile is the onboarding record that gates listing creation and
// accumulates reviews.
type VendorProfile struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"user_id" json:"userId"`
	BusinessDetails BusinessDetails `bson:"business_details" json:"businessDetails"`
	Policies        VendorPolicies  `bson:"policies" json:"policies"`
	Services        []ServiceEntry  `bson:"services,omitempty" json:"services,omitempty"`
	Reviews         []Review        `bson:"reviews,omitempty" json:"reviews,omitempty"`
	AverageRating   float64         `bson:"average_rating" json:"averageRating"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}

// VendorDetail is a vendor profile resolved with its account for display.
type VendorDetail struct {
	VendorProfile
	User *UserSummary `json:"user,omitempty"`
}
