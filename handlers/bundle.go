package handlers

import (
	"github.com/go-redis/redis/v8"

	userRepo "weddingsparks/database/repository/user"
)

// HandlerBundle groups the wired handlers plus the dependencies route
// middleware needs.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Listing *ListingHandler
	Vendor  *VendorHandler

	UserRepo userRepo.UserRepository
	Cache    *redis.Client
}
