package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingsparks/models"
)

type memUserRepo struct {
	users map[string]*models.User
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) SetRefreshTokenHash(_ context.Context, id, hash string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshTokenHash = hash
	}
	return nil
}

func (r *memUserRepo) ClearRefreshToken(_ context.Context, id string) error {
	if u, ok := r.users[id]; ok {
		u.RefreshTokenHash = ""
	}
	return nil
}

func (r *memUserRepo) SetOnboardingCompleted(_ context.Context, id string, completed bool) error {
	if u, ok := r.users[id]; ok {
		u.OnboardingCompleted = completed
	}
	return nil
}

func newUserTestService() *DefaultUserService {
	return &DefaultUserService{Repo: &memUserRepo{users: make(map[string]*models.User)}}
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:        "Asha",
		Email:       "Asha@Example.com",
		Password:    "hunter22",
		PhoneNumber: "+919999999999",
		Role:        models.RoleCustomer,
	}
}

func TestRegister(t *testing.T) {
	svc := newUserTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", result.User.Email, "email is normalized")
	assert.NotEmpty(t, result.User.ID)
	assert.NotEqual(t, "hunter22", result.User.PasswordHash)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, registerInput())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("admin role refused", func(t *testing.T) {
		in := registerInput()
		in.Email = "admin@example.com"
		in.Role = models.RoleAdmin
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("missing fields", func(t *testing.T) {
		in := registerInput()
		in.Password = ""
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestLogin(t *testing.T) {
	svc := newUserTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, "asha@example.com", "hunter22")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "asha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshRotation(t *testing.T) {
	svc := newUserTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	original := result.Tokens.RefreshToken

	rotated, err := svc.Refresh(ctx, original)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The original token hash was replaced, so replaying it fails.
	_, err = svc.Refresh(ctx, original)
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	})
}

func TestLogoutRevokesRefresh(t *testing.T) {
	svc := newUserTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.User.ID))

	_, err = svc.Refresh(ctx, result.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestCheckOnboarding(t *testing.T) {
	svc := newUserTestService()
	ctx := context.Background()

	in := registerInput()
	in.Role = models.RoleVendor
	result, err := svc.Register(ctx, in)
	require.NoError(t, err)

	done, err := svc.CheckOnboarding(ctx, result.User.ID)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, svc.Repo.SetOnboardingCompleted(ctx, result.User.ID, true))
	done, err = svc.CheckOnboarding(ctx, result.User.ID)
	require.NoError(t, err)
	assert.True(t, done)
}
