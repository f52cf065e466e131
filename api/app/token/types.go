package token

import (
	"net/http"

	"github.com/go-chi/render"
)

// token response shaped after https://datatracker.ietf.org/doc/html/rfc6749#section-5.1
type accessTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    *int   `json:"expires_in,omitempty"`
}

func (*accessTokenResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

// every failure path renders this exact payload, the caller never
// learns which of client, code or grant lookup failed
type authenticationFailedResponse struct {
	Error string `json:"error"`
}

func (*authenticationFailedResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusUnauthorized)
	return nil
}

func couldNotAuthenticate() *authenticationFailedResponse {
	return &authenticationFailedResponse{
		Error: "could not authenticate",
	}
}
