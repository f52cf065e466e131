package grants

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/grantrx/grantrx/application"
	"github.com/grantrx/grantrx/config"
	"github.com/grantrx/grantrx/db"
	"github.com/grantrx/grantrx/db/tables"
	"github.com/grantrx/grantrx/events"
	"github.com/grantrx/grantrx/events/event"
	"github.com/grantrx/grantrx/generator"
	"github.com/grantrx/grantrx/tokens"
	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates that no grant matched, a malformed token, an
	// undecryptable stored value, a wrong application and a plain miss
	// all collapse into this one error so callers cannot tell them apart
	ErrNotFound = errors.New("requested entity not found")
	// ErrTokenGeneration indicates the bounded retries for a collision
	// free token triple were exhausted
	ErrTokenGeneration = errors.New("could not generate a unique token triple")
)

// entropy per token secret, rendered as hex by the generator
const tokenSecretLength = 24

// attempts to write a collision free token triple before giving up
const maxTokenAttempts = 3

type GrantStorer interface {
	GrantByID(ctx context.Context, id int) (*tables.GrantTable, error)
	GrantByUserAndApplication(
		ctx context.Context,
		userID uuid.UUID,
		applicationID int,
	) (*tables.GrantTable, error)
	InsertGrant(
		ctx context.Context,
		userID uuid.UUID,
		applicationID int,
		permissions tables.MapStructure,
	) (int, error)
	UpdateGrantTokens(
		ctx context.Context,
		id int,
		code string,
		accessToken string,
		refreshToken string,
		expiresAt *time.Time,
	) error
	UpdateGrantPermissions(ctx context.Context, id int, permissions tables.MapStructure) error
}

type ApplicationSupplier interface {
	ApplicationByID(ctx context.Context, id int) (*application.Application, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event)
}

// FieldCipher sits between plaintext token values and the ciphertext
// columns of the store
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Service is the grant lifecycle engine, it is stateless between calls,
// all durable state lives in the store
type Service struct {
	log        *zap.Logger
	store      GrantStorer
	cipher     FieldCipher
	codec      *tokens.Codec
	generate   *generator.RandomTokenGenerator
	dispatcher Dispatcher
	supplier   ApplicationSupplier
	cfg        *config.GrantConfiguration
}

func NewGrantService(log *zap.Logger,
	store GrantStorer,
	cipher FieldCipher,
	supplier ApplicationSupplier,
	dispatcher Dispatcher,
	cfg *config.GrantConfiguration) *Service {
	return &Service{
		log:        log,
		store:      store,
		cipher:     cipher,
		codec:      tokens.NewCodec(),
		generate:   generator.New(),
		dispatcher: dispatcher,
		supplier:   supplier,
		cfg:        cfg,
	}
}

// DefaultPermissions turns the configured requestable permission list
// into the permission map a fresh grant starts with
func (s *Service) DefaultPermissions() map[string]bool {
	res := make(map[string]bool, len(s.cfg.RequestablePermissions))
	for _, p := range s.cfg.RequestablePermissions {
		res[p] = true
	}
	return res
}

func (s *Service) decryptField(field *string) (string, error) {
	if field == nil {
		return "", nil
	}
	return s.cipher.Decrypt(*field)
}

func (s *Service) build(ctx context.Context, table *tables.GrantTable) (*Grant, error) {
	app, err := s.supplier.ApplicationByID(ctx, table.ApplicationID)
	if err != nil {
		return nil, err
	}
	code, err := s.decryptField(table.Code)
	if err != nil {
		return nil, err
	}
	accessToken, err := s.decryptField(table.AccessToken)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.decryptField(table.RefreshToken)
	if err != nil {
		return nil, err
	}
	permissions := make(map[string]bool, len(table.Permissions))
	for k, v := range table.Permissions {
		if b, ok := v.(bool); ok {
			permissions[k] = b
		}
	}
	return &Grant{
		id:                   table.ID,
		userID:               table.UserID,
		app:                  app,
		code:                 code,
		accessToken:          accessToken,
		refreshToken:         refreshToken,
		accessTokenExpiresAt: table.AccessTokenExpiresAt,
		permissions:          permissions,
		expiryEnforced:       s.cfg.RequireRefreshWithin > 0,
	}, nil
}

// fetchForToken decodes the supplied token, fetches the embedded grant
// and optionally pins it to an application. Decode failures, cipher
// failures and misses all come back as ErrNotFound.
func (s *Service) fetchForToken(
	ctx context.Context,
	token string,
	applicationID *int,
) (*Grant, error) {
	grantID, _, err := s.codec.Decode(token)
	if err != nil {
		return nil, ErrNotFound
	}
	table, err := s.store.GrantByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("error fetching grant by id", zap.Error(err))
		return nil, err
	}
	if applicationID != nil && table.ApplicationID != *applicationID {
		return nil, ErrNotFound
	}
	grant, err := s.build(ctx, table)
	if err != nil {
		if errors.Is(err, tokens.ErrCipher) {
			return nil, ErrNotFound
		}
		if errors.Is(err, application.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("error building grant", zap.Error(err))
		return nil, err
	}
	return grant, nil
}

// FindForToken resolves a bearer token to its owning grant, this is the
// authentication path for every protected request
func (s *Service) FindForToken(ctx context.Context, token string) (*Grant, error) {
	grant, err := s.fetchForToken(ctx, token, nil)
	if err != nil {
		return nil, err
	}
	if grant.accessToken != token {
		return nil, ErrNotFound
	}
	return grant, nil
}

// FindByCodeAndApp resolves an authorization code for a specific
// application, a code issued to another application is not found
func (s *Service) FindByCodeAndApp(
	ctx context.Context,
	code string,
	applicationID int,
) (*Grant, error) {
	grant, err := s.fetchForToken(ctx, code, &applicationID)
	if err != nil {
		return nil, err
	}
	if grant.code != code {
		return nil, ErrNotFound
	}
	return grant, nil
}

// FindByRefreshAndApp resolves a refresh token for a specific application
func (s *Service) FindByRefreshAndApp(
	ctx context.Context,
	refreshToken string,
	applicationID int,
) (*Grant, error) {
	grant, err := s.fetchForToken(ctx, refreshToken, &applicationID)
	if err != nil {
		return nil, err
	}
	if grant.refreshToken != refreshToken {
		return nil, ErrNotFound
	}
	return grant, nil
}

// FindOrCreateByUserAndApp returns the single grant of a (user,
// application) pair, creating and issuing its first token triple when
// none exists. Losing the insert race against a concurrent first-time
// call is benign, the loser re-fetches the winner's row.
func (s *Service) FindOrCreateByUserAndApp(
	ctx context.Context,
	userID uuid.UUID,
	applicationID int,
) (*Grant, error) {
	created := false
	table, err := s.store.GrantByUserAndApplication(ctx, userID, applicationID)
	if errors.Is(err, db.ErrNotFound) {
		var id int
		id, err = s.store.InsertGrant(
			ctx,
			userID,
			applicationID,
			permissionsToMapStructure(s.DefaultPermissions()),
		)
		switch {
		case errors.Is(err, db.ErrAlreadyExists):
			// raced a concurrent creation, the winner's row is authoritative
			table, err = s.store.GrantByUserAndApplication(ctx, userID, applicationID)
		case err == nil:
			created = true
			table, err = s.store.GrantByID(ctx, id)
		}
	}
	if err != nil {
		s.log.Error("error finding or creating grant", zap.Error(err))
		return nil, err
	}
	grant, err := s.build(ctx, table)
	if err != nil {
		return nil, err
	}
	if created {
		s.dispatcher.Dispatch(ctx, &event.GrantCreated{
			GrantID:       grant.id,
			ApplicationID: applicationID,
			UserID:        userID,
		})
		if err = s.Refresh(ctx, grant); err != nil {
			return nil, err
		}
	}
	return grant, nil
}

// Refresh issues a fresh, pairwise independent token triple and
// recomputes the expiry. A triple colliding with any stored token loses
// against the unique indexes and is regenerated with new secrets,
// bounded by maxTokenAttempts.
func (s *Service) Refresh(ctx context.Context, grant *Grant) error {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		code := s.codec.Encode(grant.id, string(s.generate.CreateHexSecret(tokenSecretLength)))
		accessToken := s.codec.Encode(grant.id, string(s.generate.CreateHexSecret(tokenSecretLength)))
		refreshToken := s.codec.Encode(grant.id, string(s.generate.CreateHexSecret(tokenSecretLength)))

		encryptedCode, err := s.cipher.Encrypt(code)
		if err != nil {
			return err
		}
		encryptedAccess, err := s.cipher.Encrypt(accessToken)
		if err != nil {
			return err
		}
		encryptedRefresh, err := s.cipher.Encrypt(refreshToken)
		if err != nil {
			return err
		}

		var expiresAt *time.Time
		if s.cfg.RequireRefreshWithin > 0 {
			e := time.Now().UTC().Add(s.cfg.RequireRefreshWithin)
			expiresAt = &e
		}

		err = s.store.UpdateGrantTokens(
			ctx,
			grant.id,
			encryptedCode,
			encryptedAccess,
			encryptedRefresh,
			expiresAt,
		)
		if errors.Is(err, db.ErrAlreadyExists) {
			s.log.Warn("token collision on refresh, regenerating",
				zap.Int("grant_id", grant.id),
				zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			s.log.Error("could not persist rotated tokens", zap.Error(err))
			return err
		}

		grant.code = code
		grant.accessToken = accessToken
		grant.refreshToken = refreshToken
		grant.accessTokenExpiresAt = expiresAt
		grant.expiryEnforced = s.cfg.RequireRefreshWithin > 0

		s.dispatcher.Dispatch(ctx, &event.GrantTokensRotated{
			GrantID:       grant.id,
			ApplicationID: grant.app.ID(),
			UserID:        grant.userID,
			ExpiresAt:     expiresAt,
		})
		return nil
	}
	return ErrTokenGeneration
}

// UpdatePermissions replaces the permission map of a grant, persisted
// only when it actually changed
func (s *Service) UpdatePermissions(
	ctx context.Context,
	grant *Grant,
	permissions map[string]bool,
) error {
	if permissionsEqual(grant.permissions, permissions) {
		return nil
	}
	err := s.store.UpdateGrantPermissions(ctx, grant.id, permissionsToMapStructure(permissions))
	if err != nil {
		s.log.Error("could not update grant permissions", zap.Error(err))
		return err
	}
	grant.permissions = make(map[string]bool, len(permissions))
	for k, v := range permissions {
		grant.permissions[k] = v
	}
	s.dispatcher.Dispatch(ctx, &event.GrantPermissionsChanged{
		GrantID:     grant.id,
		Permissions: grant.Permissions(),
	})
	return nil
}

func permissionsToMapStructure(permissions map[string]bool) tables.MapStructure {
	res := make(tables.MapStructure, len(permissions))
	for k, v := range permissions {
		res[k] = v
	}
	return res
}

func permissionsEqual(a map[string]bool, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || v != w {
			return false
		}
	}
	return true
}
