package models

// Location is the structured country/state/city triple used by listings and bookings.
type Location struct {
	Country string `bson:"country" json:"country"`
	State   string `bson:"state" json:"state"`
	City    string `bson:"city" json:"city"`
}

// IsComplete reports whether all three location components are present.
func (l Location) IsComplete() bool {
	return l.Country != "" && l.State != "" && l.City != ""
}
