// Package token is where clients exchange codes and refresh tokens for
// access tokens
package token

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/grantrx/grantrx/application"
	"github.com/grantrx/grantrx/config"
	"github.com/grantrx/grantrx/grants"
	"go.uber.org/zap"
)

type TokenRessource struct {
	logger       *zap.Logger
	grantService *grants.Service
	appService   *application.Service
	cors         *config.CORSConfiguration
}

func NewTokenRessource(logger *zap.Logger,
	grantService *grants.Service,
	appService *application.Service,
	corsConfig *config.CORSConfiguration) *TokenRessource {
	return &TokenRessource{
		logger:       logger,
		grantService: grantService,
		appService:   appService,
		cors:         corsConfig,
	}
}

func (t *TokenRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	opts := cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if t.cors != nil {
		if len(t.cors.AllowedOrigins) > 0 {
			opts.AllowedOrigins = t.cors.AllowedOrigins
		}
		if len(t.cors.AllowedMethods) > 0 {
			opts.AllowedMethods = t.cors.AllowedMethods
		}
		opts.AllowCredentials = t.cors.AllowCredentials
	}
	r.Use(cors.Handler(opts))

	r.Post("/token", t.token)

	return r
}

// token exchanges an authorization code or a refresh token for a fresh
// token triple. Which check failed is never disclosed, every failure is
// the same generic 401.
func (t *TokenRessource) token(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		t.logger.Error("could not parse form on token endpoint", zap.Error(err))
		t.renderFailure(w, r)
		return
	}

	app, err := t.appService.Authenticate(
		r.Context(),
		r.FormValue("client_id"),
		r.FormValue("client_secret"),
	)
	if err != nil {
		t.renderFailure(w, r)
		return
	}

	var grant *grants.Grant
	switch {
	case r.FormValue("code") != "":
		grant, err = t.grantService.FindByCodeAndApp(r.Context(), r.FormValue("code"), app.ID())
	case r.FormValue("refresh_token") != "":
		grant, err = t.grantService.FindByRefreshAndApp(
			r.Context(),
			r.FormValue("refresh_token"),
			app.ID(),
		)
	default:
		t.renderFailure(w, r)
		return
	}
	if err != nil {
		t.renderFailure(w, r)
		return
	}

	if err = t.grantService.Refresh(r.Context(), grant); err != nil {
		t.logger.Error("could not refresh grant", zap.Error(err))
		t.renderFailure(w, r)
		return
	}

	response := &accessTokenResponse{
		AccessToken:  grant.AccessToken(),
		TokenType:    "bearer",
		RefreshToken: grant.RefreshToken(),
		ExpiresIn:    grant.ExpiresIn(),
	}
	if err = render.Render(w, r, response); err != nil {
		t.logger.Error("unable to render response", zap.Error(err))
	}
}

func (t *TokenRessource) renderFailure(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, couldNotAuthenticate()); err != nil {
		t.logger.Error("unable to render response", zap.Error(err))
	}
}
