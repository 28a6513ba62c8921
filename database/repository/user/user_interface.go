package userRepo

import (
	"context"

	"weddingsparks/models"
)

// UserRepository defines persistence for account records. Lookup methods
// return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetRefreshTokenHash(ctx context.Context, id, hash string) error
	ClearRefreshToken(ctx context.Context, id string) error
	SetOnboardingCompleted(ctx context.Context, id string, completed bool) error
}
