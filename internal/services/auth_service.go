package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	googleSvc   domain.GoogleVerifier
	phones      *PhoneNormalizer
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	googleSvc domain.GoogleVerifier,
	phones *PhoneNormalizer,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		googleSvc:   googleSvc,
		phones:      phones,
		tokenTTL:    tokenTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, fullName, email, phone, password string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: hash,
		Role:         "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Login implements domain.AuthService. The identifier may be an email
// address or a phone number in any of its stored variants.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// LoginWithGoogle implements domain.AuthService
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	payload, err := s.googleSvc.Verify(ctx, idToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if !payload.EmailVerified {
		return nil, domain.ErrInvalidCredentials
	}

	email := strings.ToLower(payload.Email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		user = &domain.User{
			FullName: payload.FullName,
			Email:    email,
			Role:     "user",
			GoogleID: payload.Sub,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.GoogleID == "" {
		user.GoogleID = payload.Sub
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return s.issueToken(user)
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthServiceImpl) findByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	switch s.phones.Classify(identifier) {
	case IdentifierEmail:
		return s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(identifier)))
	case IdentifierPhone:
		for _, variant := range s.phones.Normalize(identifier) {
			if user, err := s.userRepo.FindByPhone(ctx, variant); err == nil {
				return user, nil
			}
		}
		return nil, domain.ErrUserNotFound
	default:
		return nil, domain.ErrUserNotFound
	}
}

func (s *AuthServiceImpl) issueToken(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
