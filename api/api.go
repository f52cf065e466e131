package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/grantrx/grantrx/api/app/token"
	"github.com/grantrx/grantrx/application"
	"github.com/grantrx/grantrx/config"
	"github.com/grantrx/grantrx/grants"

	"go.uber.org/zap"
)

func compose(logger *zap.Logger,
	cfg *config.Configuration,
	grantService *grants.Service,
	appService *application.Service) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Use(loggerMiddleware(logger))

	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(50 * time.Second))

	tokenRessource := token.NewTokenRessource(
		logger.Named("token_endpoint"),
		grantService,
		appService,
		cfg.CORS,
	)
	r.Mount("/oauth", tokenRessource.Router())

	return r, nil
}
