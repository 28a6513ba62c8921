package models

import "time"

// Account roles.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// IsValidRole reports whether role is one of the allowed account roles.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleVendor || role == RoleAdmin
}

// User represents an account record (customer, vendor or admin).
type User struct {
	ID                  string    `bson:"id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	Email               string    `bson:"email" json:"email"`
	PasswordHash        string    `bson:"password_hash" json:"-"`
	PhoneNumber         string    `bson:"phone_number" json:"phoneNumber"`
	Avatar              string    `bson:"avatar" json:"avatar"`
	Role                string    `bson:"role" json:"role"`
	RefreshTokenHash    string    `bson:"refresh_token_hash,omitempty" json:"-"`
	OnboardingCompleted bool      `bson:"onboarding_completed" json:"onboardingCompleted"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the subset of account fields embedded in booking and
// listing responses.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Summary returns the embeddable view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
