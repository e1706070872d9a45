package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/antojoseph2806/PThrive/domain"
)

// GoogleVerifierImpl implements domain.GoogleVerifier against a specific
// OAuth client ID.
type GoogleVerifierImpl struct {
	clientID string
}

// NewGoogleVerifier creates a new Google ID token verifier
func NewGoogleVerifier(clientID string) domain.GoogleVerifier {
	return &GoogleVerifierImpl{clientID: clientID}
}

// Verify implements domain.GoogleVerifier
func (v *GoogleVerifierImpl) Verify(ctx context.Context, token string) (*domain.GooglePayload, error) {
	p, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", domain.ErrTokenInvalid)
	}

	email, _ := p.Claims["email"].(string)
	emailVerified, _ := p.Claims["email_verified"].(bool)
	name, _ := p.Claims["name"].(string)

	return &domain.GooglePayload{
		Sub:           p.Subject,
		Email:         email,
		FullName:      name,
		EmailVerified: emailVerified,
	}, nil
}
