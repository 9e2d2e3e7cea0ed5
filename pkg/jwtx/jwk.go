package jwtx

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// strippedJWKFields are removed from a private JWK before it is parsed. The
// signing primitives reject operation restrictions and multi-prime RSA.
var strippedJWKFields = []string{"key_ops", "use", "oth"}

// PrivateJWK is a parsed private key record ready to build a Signer.
type PrivateJWK struct {
	KID string
	Alg string // empty when the record does not declare one
	Key any    // *rsa.PrivateKey or *ecdsa.PrivateKey
}

// Signer builds a Signer for the key, preferring kid over the record's own kid
// when kid is non-empty.
func (p *PrivateJWK) Signer(kid string) (Signer, error) {
	if kid == "" {
		kid = p.KID
	}
	return NewSigner(kid, p.Alg, p.Key)
}

// DecodeBase64JWK decodes base64 key material as carried in environment
// variables. Standard, raw and URL alphabets are accepted.
func DecodeBase64JWK(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &KeyMaterialError{Reason: "empty key material"}
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, &KeyMaterialError{Reason: "key material is not valid base64"}
}

// SanitizeJWK drops the fields listed in strippedJWKFields and returns the
// re-encoded record.
func SanitizeJWK(material []byte) ([]byte, error) {
	var fields map[string]any
	if err := json.Unmarshal(material, &fields); err != nil {
		return nil, &KeyMaterialError{Reason: "key material is not a JSON object", Err: err}
	}
	for _, name := range strippedJWKFields {
		delete(fields, name)
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, &KeyMaterialError{Reason: "re-encode sanitized key", Err: err}
	}
	return out, nil
}

// ParsePrivateJWK sanitizes and parses a private JWK.
func ParsePrivateJWK(material []byte) (*PrivateJWK, error) {
	clean, err := SanitizeJWK(material)
	if err != nil {
		return nil, err
	}

	key, err := jwk.ParseKey(clean)
	if err != nil {
		return nil, &KeyMaterialError{Reason: "parse JWK", Err: err}
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		return nil, &KeyMaterialError{Reason: "export JWK", Err: err}
	}
	switch raw.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey:
	default:
		return nil, &KeyMaterialError{Reason: fmt.Sprintf("JWK of type %q is not a supported private key", key.KeyType())}
	}

	alg := ""
	if a := key.Algorithm(); a != nil {
		alg = a.String()
	}

	return &PrivateJWK{KID: key.KeyID(), Alg: alg, Key: raw}, nil
}

// SignerFromBase64JWK is the full path from an environment value to a Signer.
func SignerFromBase64JWK(kid, encoded string) (Signer, error) {
	material, err := DecodeBase64JWK(encoded)
	if err != nil {
		return nil, err
	}
	parsed, err := ParsePrivateJWK(material)
	if err != nil {
		return nil, err
	}
	return parsed.Signer(kid)
}
