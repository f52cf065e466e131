package tokens

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedToken indicates a token that could not be decoded,
// callers treat this the same as an unknown token
var ErrMalformedToken = errors.New("malformed opaque token")

const delimiter = "|"

// Codec encodes and decodes the opaque token wire format,
// base64("<grantId>|<secret>"). The embedded grant id turns a lookup
// by token value into a primary key fetch, the secret is re-checked
// against the stored value afterwards.
type Codec struct{}

// NewCodec returns a new codec instance
func NewCodec() *Codec {
	return &Codec{}
}

// Encode composes a grant id and a random secret into a single opaque string.
// The secret must not contain the delimiter, hex secrets never do.
func (*Codec) Encode(grantID int, secret string) string {
	return base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%d%s%s", grantID, delimiter, secret)),
	)
}

// Decode extracts the grant id and secret from an opaque token.
// Any malformed input yields ErrMalformedToken, no exceptions leak past here.
func (*Codec) Decode(token string) (int, string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, "", ErrMalformedToken
	}
	id, secret, found := strings.Cut(string(raw), delimiter)
	if !found {
		return 0, "", ErrMalformedToken
	}
	grantID, err := strconv.Atoi(id)
	if err != nil || grantID <= 0 {
		return 0, "", ErrMalformedToken
	}
	if strings.Contains(secret, delimiter) {
		return 0, "", ErrMalformedToken
	}
	return grantID, secret, nil
}
