package jwtx

import (
	"crypto/rsa"

	"github.com/golang-jwt/jwt/v5"
)

// RS256Signer implements the Signer interface using RSA SHA-256.
type RS256Signer struct {
	kid string
	key *rsa.PrivateKey
	alg string
}

func (s *RS256Signer) Alg() string { return s.alg }
func (s *RS256Signer) KID() string { return s.kid }

// Sign turns the claims into a signed JWT string carrying our kid.
func (s *RS256Signer) Sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.key)
}

// Validate checks the key is present and internally consistent. A JWK with
// mismatched primes and modulus parses fine and only fails here.
func (s *RS256Signer) Validate() error {
	if s.key == nil {
		return &KeyMaterialError{Reason: "nil RSA key"}
	}
	if err := s.key.Validate(); err != nil {
		return &KeyMaterialError{Reason: "RSA key failed validation", Err: err}
	}
	if s.key.N.BitLen() < 2048 {
		return &KeyMaterialError{Reason: "RSA key shorter than 2048 bits"}
	}
	return nil
}
