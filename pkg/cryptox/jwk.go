package cryptox

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// KeyPair holds the two JWK encodings an operator needs: the private record
// for the service configuration and the public record to register with the
// authorization server.
type KeyPair struct {
	Private []byte
	Public  []byte
}

// PrivateBase64 is the private JWK in the form expected by
// MASKINPORTEN_JWK_BASE64.
func (k KeyPair) PrivateBase64() string {
	return base64.StdEncoding.EncodeToString(k.Private)
}

// EncodeJWK encodes a private key (*rsa.PrivateKey or *ecdsa.PrivateKey) as
// private and public JWKs tagged with kid, alg and use=sig.
func EncodeJWK(kid, alg string, privateKey any) (KeyPair, error) {
	key, err := jwk.FromRaw(privateKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("cryptox: wrap private key: %w", err)
	}

	for name, value := range map[string]string{
		jwk.KeyIDKey:     kid,
		jwk.AlgorithmKey: alg,
		jwk.KeyUsageKey:  "sig",
	} {
		if value == "" {
			continue
		}
		if err := key.Set(name, value); err != nil {
			return KeyPair{}, fmt.Errorf("cryptox: set %s: %w", name, err)
		}
	}

	pub, err := jwk.PublicKeyOf(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("cryptox: derive public key: %w", err)
	}

	privJSON, err := json.Marshal(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("cryptox: encode private JWK: %w", err)
	}
	pubJSON, err := json.Marshal(pub)
	if err != nil {
		return KeyPair{}, fmt.Errorf("cryptox: encode public JWK: %w", err)
	}

	return KeyPair{Private: privJSON, Public: pubJSON}, nil
}
