package jwtx

import (
	"errors"
	"fmt"
	"time"
)

// AssertionSigner produces signed client assertions for the JWT-bearer grant.
type AssertionSigner struct {
	ClientID string
	Audience string
	Signer   Signer

	// Lifetime defaults to DefaultAssertionLifetime.
	Lifetime time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Sign returns a signed assertion requesting scope.
func (a *AssertionSigner) Sign(scope string) (string, error) {
	if a.Signer == nil {
		return "", &KeyMaterialError{Reason: "no signing key configured"}
	}
	if a.ClientID == "" {
		return "", errors.New("jwtx: client id is required")
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	claims := NewAssertionClaims(a.ClientID, a.Audience, scope, a.Lifetime, now().UTC())
	token, err := a.Signer.Sign(claims)
	if err != nil {
		return "", &KeyMaterialError{Reason: fmt.Sprintf("sign with %s key", a.Signer.Alg()), Err: err}
	}
	return token, nil
}
