// Command keygen creates a signing key for the JWT-bearer client. It prints
// the private JWK as base64 for MASKINPORTEN_JWK_BASE64 and the public JWK
// to register with the authorization server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/Nyeng/tenor-testdata/pkg/cryptox"
)

func main() {
	kid := flag.String("kid", "", "key id to embed (default: random UUID)")
	alg := flag.String("alg", "RS256", "signing algorithm (RS256, ES256)")
	bits := flag.Int("bits", cryptox.DefaultRSABits, "RSA key size, ignored for ES256")
	publicOnly := flag.Bool("public-only", false, "print only the public JWK")
	flag.Parse()

	if *kid == "" {
		*kid = uuid.NewString()
	}

	var (
		key any
		err error
	)
	switch *alg {
	case "RS256":
		key, err = cryptox.GenerateRSAKey(*bits)
	case "ES256":
		key, err = cryptox.GenerateES256Key()
	default:
		log.Fatalf("unsupported algorithm %q", *alg)
	}
	if err != nil {
		log.Fatalf("failed to generate key: %v", err)
	}

	pair, err := cryptox.EncodeJWK(*kid, *alg, key)
	if err != nil {
		log.Fatalf("failed to encode key: %v", err)
	}

	if *publicOnly {
		fmt.Println(string(pair.Public))
		return
	}

	fmt.Fprintf(os.Stderr, "kid: %s\n", *kid)
	fmt.Printf("MASKINPORTEN_KID=%s\n", *kid)
	fmt.Printf("MASKINPORTEN_JWK_BASE64=%s\n", pair.PrivateBase64())
	fmt.Fprintln(os.Stderr, "public JWK (register with the authorization server):")
	fmt.Fprintln(os.Stderr, string(pair.Public))
}
