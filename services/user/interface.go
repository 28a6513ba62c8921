package user

import (
	"context"
	"errors"

	userRepo "weddingsparks/database/repository/user"
	"weddingsparks/models"
	"weddingsparks/services/storage"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidRole        = errors.New("role must be customer or vendor")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrMissingFields      = errors.New("name, email, password and phone number are required")
)

// RegisterInput is the signup request. AvatarPath, when set, points at a
// temp file already received by the transport layer.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
	AvatarPath  string
}

// AuthTokens is the token pair issued on login and refresh.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult bundles the account with its freshly issued tokens.
type AuthResult struct {
	User   *models.User `json:"user"`
	Tokens AuthTokens   `json:"tokens"`
}

// UserService manages accounts and sessions.
type UserService interface {
	// Register creates an account, uploading the avatar when provided.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	// Login checks credentials and issues a token pair. The refresh token
	// hash is stored so the token can be rotated and revoked.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	// Logout revokes the stored refresh token.
	Logout(ctx context.Context, userID string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	// CheckOnboarding reports whether a vendor has completed business
	// onboarding.
	CheckOnboarding(ctx context.Context, userID string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Storage storage.Service
}

var _ UserService = (*DefaultUserService)(nil)
