package generator

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"
)

type RandomTokenType string

func tokenTypeFromString(token string) RandomTokenType {
	if token == "" {
		panic("zero length token issued, this is probably the only reason to ever panic")
	}
	return RandomTokenType(token)

}

type RandomTokenGenerator struct{}

// CreateHexSecret returns size random bytes rendered as lowercase hex,
// the alphabet can never contain a token delimiter
func (*RandomTokenGenerator) CreateHexSecret(size int) RandomTokenType {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err.Error()) // rand should never fail
	}
	return tokenTypeFromString(hex.EncodeToString(b))
}

// thanks for the gotrue authors for this, i just bluntly took it (https://github.com/netlify/gotrue/blob/master/crypto/crypto.go)

func (*RandomTokenGenerator) CreateSecureToken() RandomTokenType {
	return (&RandomTokenGenerator{}).CreateSecureTokenWithSize(32)
}

func (*RandomTokenGenerator) CreateSecureTokenWithSize(size int) RandomTokenType {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err.Error()) // rand should never fail
	}
	return tokenTypeFromString(removePadding(base64.URLEncoding.EncodeToString(b)))
}

func removePadding(token string) string {
	return strings.TrimRight(token, "=")
}

func New() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}
