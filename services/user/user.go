package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"weddingsparks/config"
	"weddingsparks/models"
	"weddingsparks/utils"
)

func accessTTL() time.Duration {
	mins := config.AppConfig.AccessTokenTTLMin
	if mins <= 0 {
		mins = 60
	}
	return time.Duration(mins) * time.Minute
}

func refreshTTL() time.Duration {
	hrs := config.AppConfig.RefreshTokenTTLHrs
	if hrs <= 0 {
		hrs = 240
	}
	return time.Duration(hrs) * time.Hour
}

// issueTokens generates a token pair and persists the refresh token hash.
func (s *DefaultUserService) issueTokens(ctx context.Context, u *models.User) (AuthTokens, error) {
	access, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role, accessTTL())
	if err != nil {
		return AuthTokens{}, err
	}
	refresh, err := utils.GenerateRefreshToken(u.ID, refreshTTL())
	if err != nil {
		return AuthTokens{}, err
	}
	if err := s.Repo.SetRefreshTokenHash(ctx, u.ID, utils.HashToken(refresh)); err != nil {
		return AuthTokens{}, err
	}
	return AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Register creates an account. Admin accounts are never self-registered.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return nil, ErrMissingFields
	}
	if input.Role == "" {
		input.Role = models.RoleCustomer
	}
	if input.Role != models.RoleCustomer && input.Role != models.RoleVendor {
		return nil, ErrInvalidRole
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	avatarURL := ""
	if input.AvatarPath != "" && s.Storage != nil {
		url, err := s.Storage.UploadFile(ctx, input.AvatarPath, "weddingsparks/avatars")
		if err != nil {
			// Signup still succeeds without the avatar.
			logger.Warn("Avatar upload failed", zap.String("email", input.Email), zap.Error(err))
		} else {
			avatarURL = url
		}
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		Avatar:       avatarURL,
		Role:         input.Role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("userID", u.ID), zap.String("role", u.Role))
	return &AuthResult{User: u, Tokens: tokens}, nil
}

// Login checks credentials and issues a fresh token pair.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("User logged in", zap.String("userID", u.ID))
	return &AuthResult{User: u, Tokens: tokens}, nil
}

// Refresh rotates a valid refresh token into a new pair. The presented
// token must hash-match the stored one, so revoked or superseded tokens
// are rejected.
func (s *DefaultUserService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := utils.ExtractRefreshSubject(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.RefreshTokenHash == "" || u.RefreshTokenHash != utils.HashToken(refreshToken) {
		return nil, ErrInvalidRefresh
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes the stored refresh token.
func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	return s.Repo.ClearRefreshToken(ctx, userID)
}

// GetUser returns the account by ID.
func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// CheckOnboarding reports whether the user finished vendor onboarding.
func (s *DefaultUserService) CheckOnboarding(ctx context.Context, userID string) (bool, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, ErrUserNotFound
	}
	return u.OnboardingCompleted, nil
}
