package jwtx

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(jwt.Claims) (string, error)
	Validate() error
}

// NewSigner picks the signer implementation matching the private key type.
// An empty alg selects the default for the key type.
func NewSigner(kid, alg string, key any) (Signer, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if alg != "" && alg != jwt.SigningMethodRS256.Alg() {
			return nil, &KeyMaterialError{Reason: fmt.Sprintf("algorithm %q not supported for RSA key", alg)}
		}
		return NewSignerRS256(kid, k)
	case *ecdsa.PrivateKey:
		if alg != "" && alg != jwt.SigningMethodES256.Alg() {
			return nil, &KeyMaterialError{Reason: fmt.Sprintf("algorithm %q not supported for EC key", alg)}
		}
		return NewSignerES256(kid, k)
	default:
		return nil, &KeyMaterialError{Reason: fmt.Sprintf("unsupported private key type %T", key)}
	}
}

// NewSignerRS256 creates an RS256 signer from an RSA private key.
func NewSignerRS256(kid string, key *rsa.PrivateKey) (Signer, error) {
	s := &RS256Signer{kid: kid, key: key, alg: jwt.SigningMethodRS256.Alg()}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSignerES256 creates an ES256 signer from an ECDSA P-256 private key.
func NewSignerES256(kid string, key *ecdsa.PrivateKey) (Signer, error) {
	s := &ES256Signer{kid: kid, key: key, alg: jwt.SigningMethodES256.Alg()}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
