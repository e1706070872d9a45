package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antojoseph2806/PThrive/domain"
	"github.com/antojoseph2806/PThrive/internal/mocks"
)

func createAuthServiceForTest(t *testing.T, userRepo *mocks.MockUserRepository, googleSvc *mocks.MockGoogleVerifier) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if googleSvc == nil {
		googleSvc = mocks.NewMockGoogleVerifier()
	}
	return NewAuthService(
		userRepo,
		mocks.NewMockPasswordService(),
		mocks.NewMockTokenService(),
		googleSvc,
		NewPhoneNormalizer("91"),
		7*24*time.Hour,
	)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository()
	userRepo.CreateFunc = func(_ context.Context, user *domain.User) error {
		user.ID = 7
		return nil
	}
	svc := createAuthServiceForTest(t, userRepo, nil)

	result, err := svc.Register(ctx, "  New User ", "New@Example.COM", " 9876543210 ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "New User", result.User.FullName)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Equal(t, "9876543210", result.User.Phone)
	assert.Equal(t, "user", result.User.Role)
	assert.Equal(t, "hashed_secret123", result.User.PasswordHash)
	assert.Equal(t, "token_7_user", result.Token)
	assert.Equal(t, int64(7*24*3600), result.ExpiresIn)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: "new@example.com"}, nil
	}
	svc := createAuthServiceForTest(t, userRepo, nil)

	_, err := svc.Register(context.Background(), "New User", "new@example.com", "9876543210", "secret123")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	stored := &domain.User{
		ID:           1,
		Email:        "test@example.com",
		Phone:        "09876543210",
		PasswordHash: "hashed_secret123",
		Role:         "user",
	}

	tests := []struct {
		name       string
		identifier string
		password   string
		expectErr  error
	}{
		{name: "login by email", identifier: "test@example.com", password: "secret123"},
		{name: "login by stored phone format", identifier: "09876543210", password: "secret123"},
		{name: "login by alternate phone variant", identifier: "+919876543210", password: "secret123"},
		{name: "wrong password", identifier: "test@example.com", password: "nope", expectErr: domain.ErrInvalidCredentials},
		{name: "unknown identifier", identifier: "other@example.com", password: "secret123", expectErr: domain.ErrInvalidCredentials},
		{name: "garbage identifier", identifier: "???", password: "secret123", expectErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByEmailFunc = func(_ context.Context, email string) (*domain.User, error) {
				if email == stored.Email {
					return stored, nil
				}
				return nil, domain.ErrUserNotFound
			}
			userRepo.FindByPhoneFunc = func(_ context.Context, phone string) (*domain.User, error) {
				if phone == stored.Phone {
					return stored, nil
				}
				return nil, domain.ErrUserNotFound
			}
			svc := createAuthServiceForTest(t, userRepo, nil)

			result, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account on first sign-in", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		var created *domain.User
		userRepo.CreateFunc = func(_ context.Context, user *domain.User) error {
			user.ID = 5
			created = user
			return nil
		}
		svc := createAuthServiceForTest(t, userRepo, nil)

		result, err := svc.LoginWithGoogle(ctx, "valid-token")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "test@example.com", created.Email)
		assert.Equal(t, "google-sub-1", created.GoogleID)
		assert.Equal(t, uint(5), result.User.ID)
	})

	t.Run("links existing account", func(t *testing.T) {
		stored := &domain.User{ID: 2, Email: "test@example.com", Role: "user"}
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*domain.User, error) {
			return stored, nil
		}
		updated := false
		userRepo.UpdateFunc = func(_ context.Context, user *domain.User) error {
			updated = true
			return nil
		}
		svc := createAuthServiceForTest(t, userRepo, nil)

		result, err := svc.LoginWithGoogle(ctx, "valid-token")
		require.NoError(t, err)
		assert.True(t, updated, "existing account should get the google id linked")
		assert.Equal(t, "google-sub-1", result.User.GoogleID)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		googleSvc := mocks.NewMockGoogleVerifier()
		googleSvc.VerifyFunc = func(_ context.Context, _ string) (*domain.GooglePayload, error) {
			return nil, domain.ErrTokenInvalid
		}
		svc := createAuthServiceForTest(t, nil, googleSvc)

		_, err := svc.LoginWithGoogle(ctx, "bad-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects unverified email", func(t *testing.T) {
		googleSvc := mocks.NewMockGoogleVerifier()
		googleSvc.VerifyFunc = func(_ context.Context, _ string) (*domain.GooglePayload, error) {
			return &domain.GooglePayload{Sub: "s", Email: "x@example.com", EmailVerified: false}, nil
		}
		svc := createAuthServiceForTest(t, nil, googleSvc)

		_, err := svc.LoginWithGoogle(ctx, "token")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
