package jwtx

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrNoExpiry  = errors.New("jwtx: token has no exp claim")
)

// KeyMaterialError reports signing key material that cannot be parsed or is
// not a usable key for the declared algorithm. It is a configuration defect
// and retrying will not help.
type KeyMaterialError struct {
	Reason string
	Err    error
}

func (e *KeyMaterialError) Error() string {
	if e.Err == nil {
		return "jwtx: invalid key material: " + e.Reason
	}
	return fmt.Sprintf("jwtx: invalid key material: %s: %v", e.Reason, e.Err)
}

func (e *KeyMaterialError) Unwrap() error { return e.Err }
