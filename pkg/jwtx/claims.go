package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAssertionLifetime bounds how long a client assertion is accepted by
// the authorization server.
const DefaultAssertionLifetime = 2 * time.Minute

// AssertionClaims are the claims of a JWT-bearer client assertion. The
// authorization server expects aud as a single string, so it shadows the
// list-valued audience of the registered claims.
type AssertionClaims struct {
	Audience string `json:"aud"`
	Scope    string `json:"scope"`

	jwt.RegisteredClaims
}

// GetAudience satisfies jwt.Claims using the single-valued audience.
func (c AssertionClaims) GetAudience() (jwt.ClaimStrings, error) {
	if c.Audience == "" {
		return nil, nil
	}
	return jwt.ClaimStrings{c.Audience}, nil
}

// NewAssertionClaims builds the claims for one assertion. Every call gets a
// fresh jti.
func NewAssertionClaims(clientID, audience, scope string, lifetime time.Duration, now time.Time) AssertionClaims {
	if lifetime <= 0 {
		lifetime = DefaultAssertionLifetime
	}
	return AssertionClaims{
		Audience: audience,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a unique identifier for the "jti" claim.
func NewJTI() string {
	return uuid.NewString()
}
