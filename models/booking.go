package models

import "time"

// Booking statuses. A booking starts Pending; the vendor moves it to
// Approved or Rejected exactly once.
const (
	BookingPending  = "Pending"
	BookingApproved = "Approved"
	BookingRejected = "Rejected"
)

// IsDecisionStatus reports whether status is a value a vendor may set.
func IsDecisionStatus(status string) bool {
	return status == BookingApproved || status == BookingRejected
}

// Booking represents one reservation request against a vendor's listing.
// FromDate/ToDate are calendar dates (UTC midnight); time of day carries
// no meaning.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	Location      Location  `bson:"location" json:"location"`
	FromDate      time.Time `bson:"from_date" json:"fromDate"`
	ToDate        time.Time `bson:"to_date" json:"toDate"`
	VendorID      string    `bson:"vendor_id" json:"vendorId"`
	CustomerID    string    `bson:"customer_id" json:"customerId"`
	ListingID     string    `bson:"listing_id" json:"listingId"`
	Status        string    `bson:"status" json:"status"`
	PaymentID     string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	IsPaymentDone bool      `bson:"is_payment_done" json:"isPaymentDone"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Days returns the inclusive number of calendar days the booking spans.
// A one-night 2025-03-01..2025-03-02 booking covers two days.
func (b *Booking) Days() int {
	return int(b.ToDate.Sub(b.FromDate).Hours()/24) + 1
}

// Overlaps reports whether the booking's date range shares at least one
// day with [from, to] (inclusive bounds on both ends).
func (b *Booking) Overlaps(from, to time.Time) bool {
	return !b.FromDate.After(to) && !b.ToDate.Before(from)
}

// CreateBookingInput is the request payload for creating a booking.
type CreateBookingInput struct {
	CustomerName string   `json:"customerName"`
	Location     Location `json:"location"`
	FromDate     string   `json:"fromDate"`
	ToDate       string   `json:"toDate"`
	VendorID     string   `json:"vendorId"`
	ListingID    string   `json:"listingId"`
}

// BookingDetail is a booking resolved with its related records for
// display.
type BookingDetail struct {
	Booking
	Vendor   *UserSummary    `json:"vendor,omitempty"`
	Customer *UserSummary    `json:"customer,omitempty"`
	Listing  *ListingSummary `json:"listing,omitempty"`
	Payment  *PaymentSummary `json:"payment,omitempty"`
}
