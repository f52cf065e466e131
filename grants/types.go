package grants

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grantrx/grantrx/application"
)

// Grant binds a user to a client application with the currently issued
// token triple, expiry and permission set. Token fields hold the
// plaintext values, the ciphertext never leaves the store boundary.
type Grant struct {
	id                   int
	userID               uuid.UUID
	app                  *application.Application
	code                 string
	accessToken          string
	refreshToken         string
	accessTokenExpiresAt *time.Time
	permissions          map[string]bool
	expiryEnforced       bool
}

func (g *Grant) ID() int {
	return g.id
}

func (g *Grant) UserID() uuid.UUID {
	return g.userID
}

func (g *Grant) Application() *application.Application {
	return g.app
}

// Code is the plaintext authorization code token
func (g *Grant) Code() string {
	return g.code
}

// AccessToken is the plaintext bearer token
func (g *Grant) AccessToken() string {
	return g.accessToken
}

// RefreshToken is the plaintext refresh token
func (g *Grant) RefreshToken() string {
	return g.refreshToken
}

func (g *Grant) AccessTokenExpiresAt() *time.Time {
	return g.accessTokenExpiresAt
}

func (g *Grant) Permissions() map[string]bool {
	res := make(map[string]bool, len(g.permissions))
	for k, v := range g.permissions {
		res[k] = v
	}
	return res
}

// CanAccess checks a single permission, keys are case-sensitive strings
func (g *Grant) CanAccess(permission string) bool {
	return g.permissions[permission]
}

// ExpiresIn returns the whole seconds until the access token expires,
// nil when the grant carries no expiry
func (g *Grant) ExpiresIn() *int {
	if g.accessTokenExpiresAt == nil {
		return nil
	}
	seconds := int(time.Until(*g.accessTokenExpiresAt).Seconds())
	return &seconds
}

// Expired reports whether the access token must be refreshed before use.
// Without a configured expiry policy a grant never expires, whatever the
// stored timestamp says. The engine does not reject expired grants on
// lookup, that decision belongs to the caller.
func (g *Grant) Expired() bool {
	if !g.expiryEnforced {
		return false
	}
	expiresIn := g.ExpiresIn()
	return expiresIn != nil && *expiresIn < 0
}

// RedirectURIFor appends the authorization code response parameters to
// a client redirect uri
func (g *Grant) RedirectURIFor(redirectURI string, state string) string {
	sep := "?"
	if strings.Contains(redirectURI, "?") {
		sep = "&"
	}
	uri := fmt.Sprintf("%s%scode=%s&response_type=code", redirectURI, sep, url.QueryEscape(g.code))
	if state != "" {
		uri += fmt.Sprintf("&state=%s", url.QueryEscape(state))
	}
	return uri
}
