package jwtx

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ES256Signer implements the Signer interface using ECDSA P-256 with SHA-256.
type ES256Signer struct {
	kid string
	key *ecdsa.PrivateKey
	alg string
}

func (s *ES256Signer) Alg() string { return s.alg }
func (s *ES256Signer) KID() string { return s.kid }

// Sign turns the claims into a signed JWT string carrying our kid.
func (s *ES256Signer) Sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.key)
}

// Validate does a quick sanity check on the key and its curve.
func (s *ES256Signer) Validate() error {
	if s.key == nil {
		return &KeyMaterialError{Reason: "nil ECDSA key"}
	}
	if name := s.key.Curve.Params().Name; name != "P-256" {
		return &KeyMaterialError{Reason: fmt.Sprintf("expected P-256 curve, got %s", name)}
	}
	return nil
}
