package tokens

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	"github.com/tink-crypto/tink-go/v2/tink"
)

// ErrCipher indicates the field cipher could not be applied,
// lookup paths coerce this into a plain not-found
var ErrCipher = errors.New("field cipher failure")

// tokens of different grants never share ciphertext even if the
// plaintext would collide
var associatedData = []byte("grantrx-token-field")

// FieldCipher encrypts token fields before they hit the store and
// decrypts them on read. It uses a deterministic AEAD (AES-SIV) so the
// unique indexes on the ciphertext columns keep enforcing plaintext
// uniqueness.
type FieldCipher struct {
	primitive tink.DeterministicAEAD
}

// NewFieldCipher creates a field cipher from a base64 wrapped
// cleartext tink keyset as produced by the keyset command
func NewFieldCipher(encodedKeyset string) (*FieldCipher, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encodedKeyset))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}
	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}
	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}
	return &FieldCipher{primitive: primitive}, nil
}

// Encrypt turns a plaintext token value into the ciphertext stored in the database
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	ct, err := c.primitive.EncryptDeterministically([]byte(plaintext), associatedData)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt, it fails with ErrCipher on any tampered or
// foreign-key ciphertext
func (c *FieldCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}
	pt, err := c.primitive.DecryptDeterministically(raw, associatedData)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}
	return string(pt), nil
}

// GenerateKeyset mints a fresh AES-SIV keyset, base64 wrapped for the config file
func GenerateKeyset() (string, error) {
	handle, err := keyset.NewHandle(daead.AESSIVKeyTemplate())
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(&buf)); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
