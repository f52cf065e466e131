package token

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grantrx/grantrx/application"
	appmocks "github.com/grantrx/grantrx/application/mocks"
	"github.com/grantrx/grantrx/config"
	"github.com/grantrx/grantrx/db/tables"
	"github.com/grantrx/grantrx/grants"
	grantmocks "github.com/grantrx/grantrx/grants/mocks"
	"github.com/grantrx/grantrx/tokens"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

const unauthorizedBody = `{"error":"could not authenticate"}`

type tokenTestEnv struct {
	resource   *TokenRessource
	grantStore *grantmocks.GrantStorer
	appStore   *appmocks.ApplicationStorer
	dispatcher *grantmocks.Dispatcher
	cipher     *tokens.FieldCipher
	codec      *tokens.Codec
}

func newTokenTestEnv(t *testing.T, grantCfg *config.GrantConfiguration) *tokenTestEnv {
	logger := zaptest.NewLogger(t)
	ks, err := tokens.GenerateKeyset()
	assert.NoError(t, err)
	cipher, err := tokens.NewFieldCipher(ks)
	assert.NoError(t, err)

	grantStore := grantmocks.NewGrantStorer(t)
	appStore := appmocks.NewApplicationStorer(t)
	dispatcher := grantmocks.NewDispatcher(t)

	appService := application.NewApplicationService(logger, appStore, appmocks.NewDispatcher(t))
	grantService := grants.NewGrantService(
		logger,
		grantStore,
		cipher,
		appService,
		dispatcher,
		grantCfg,
	)
	return &tokenTestEnv{
		resource:   NewTokenRessource(logger, grantService, appService, nil),
		grantStore: grantStore,
		appStore:   appStore,
		dispatcher: dispatcher,
		cipher:     cipher,
		codec:      tokens.NewCodec(),
	}
}

func (e *tokenTestEnv) applicationRow(t *testing.T, id int, clientID string, secret string) *tables.ApplicationTable {
	row := &tables.ApplicationTable{
		ID:       id,
		ClientID: clientID,
		Name:     "test app",
	}
	if secret != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
		assert.NoError(t, err)
		h := string(hashed)
		row.ClientSecret = &h
	}
	return row
}

func (e *tokenTestEnv) grantRow(
	t *testing.T,
	id int,
	applicationID int,
	code string,
	accessToken string,
	refreshToken string,
	expiresAt *time.Time,
) *tables.GrantTable {
	enc := func(plaintext string) *string {
		ct, err := e.cipher.Encrypt(plaintext)
		assert.NoError(t, err)
		return &ct
	}
	return &tables.GrantTable{
		ID:                   id,
		UserID:               uuid.MustParse("d1ef48c5-1fad-4514-ba2c-3a1851d39f87"),
		ApplicationID:        applicationID,
		Code:                 enc(code),
		AccessToken:          enc(accessToken),
		RefreshToken:         enc(refreshToken),
		AccessTokenExpiresAt: expiresAt,
		Permissions:          tables.MapStructure{"read": true},
		CreatedAt:            time.Now().UTC(),
	}
}

func TestTokenEndpointExchangesCode(t *testing.T) {
	assert := assert.New(t)
	env := newTokenTestEnv(t, &config.GrantConfiguration{RequestablePermissions: []string{"read"}})
	code := env.codec.Encode(1, "cafe0042deadbeef")

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.appStore.On("ApplicationByID", mock.Anything, 7).
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.grantStore.On("GrantByID", mock.Anything, 1).
		Return(env.grantRow(t, 1, 7, code, "old-access", "old-refresh", nil), nil)
	env.grantStore.On("UpdateGrantTokens", mock.Anything, 1, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	env.dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("*event.GrantTokensRotated")).
		Return()

	result := apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		FormData("code", code).
		Expect(t).
		Status(http.StatusOK).
		End()

	var body accessTokenResponse
	assert.NoError(json.NewDecoder(result.Response.Body).Decode(&body))
	assert.Equal("bearer", body.TokenType)
	assert.NotEmpty(body.AccessToken)
	assert.NotEmpty(body.RefreshToken)
	assert.NotEqual(body.AccessToken, body.RefreshToken)
	assert.Nil(body.ExpiresIn)

	id, _, err := env.codec.Decode(body.AccessToken)
	assert.NoError(err)
	assert.Equal(1, id)
}

func TestTokenEndpointExchangesRefreshToken(t *testing.T) {
	assert := assert.New(t)
	env := newTokenTestEnv(t, &config.GrantConfiguration{RequestablePermissions: []string{"read"}})
	refresh := env.codec.Encode(1, "beefdead42000000")

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.appStore.On("ApplicationByID", mock.Anything, 7).
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.grantStore.On("GrantByID", mock.Anything, 1).
		Return(env.grantRow(t, 1, 7, "old-code", "old-access", refresh, nil), nil)
	env.grantStore.On("UpdateGrantTokens", mock.Anything, 1, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	env.dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("*event.GrantTokensRotated")).
		Return()

	result := apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		FormData("refresh_token", refresh).
		Expect(t).
		Status(http.StatusOK).
		End()

	var body accessTokenResponse
	assert.NoError(json.NewDecoder(result.Response.Body).Decode(&body))
	assert.Equal("bearer", body.TokenType)
	assert.NotEqual(refresh, body.RefreshToken)
}

func TestTokenEndpointReportsExpiryWindow(t *testing.T) {
	assert := assert.New(t)
	env := newTokenTestEnv(t, &config.GrantConfiguration{
		RequestablePermissions: []string{"read"},
		RequireRefreshWithin:   time.Hour,
	})
	code := env.codec.Encode(1, "cafe0042deadbeef")

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.appStore.On("ApplicationByID", mock.Anything, 7).
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.grantStore.On("GrantByID", mock.Anything, 1).
		Return(env.grantRow(t, 1, 7, code, "old-access", "old-refresh", nil), nil)
	env.grantStore.On("UpdateGrantTokens", mock.Anything, 1, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	env.dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("*event.GrantTokensRotated")).
		Return()

	result := apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		FormData("code", code).
		Expect(t).
		Status(http.StatusOK).
		End()

	var body accessTokenResponse
	assert.NoError(json.NewDecoder(result.Response.Body).Decode(&body))
	if assert.NotNil(body.ExpiresIn) {
		assert.InDelta(3600, *body.ExpiresIn, 2)
	}
}

func TestTokenEndpointRejectsWrongClientSecret(t *testing.T) {
	env := newTokenTestEnv(t, &config.GrantConfiguration{})

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)

	apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "wrong").
		FormData("code", env.codec.Encode(1, "cafe0042deadbeef")).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(unauthorizedBody).
		End()
}

func TestTokenEndpointRejectsUnknownCode(t *testing.T) {
	env := newTokenTestEnv(t, &config.GrantConfiguration{})

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)

	apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		FormData("code", "not even a token").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(unauthorizedBody).
		End()
}

func TestTokenEndpointRejectsForeignApplicationCode(t *testing.T) {
	// a code minted for application 9 must not be redeemable by
	// application 7, the response stays the generic failure
	env := newTokenTestEnv(t, &config.GrantConfiguration{})
	code := env.codec.Encode(1, "cafe0042deadbeef")

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)
	env.grantStore.On("GrantByID", mock.Anything, 1).
		Return(env.grantRow(t, 1, 9, code, "old-access", "old-refresh", nil), nil)

	apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		FormData("code", code).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(unauthorizedBody).
		End()
}

func TestTokenEndpointRequiresCodeOrRefreshToken(t *testing.T) {
	env := newTokenTestEnv(t, &config.GrantConfiguration{})

	env.appStore.On("ApplicationByClientID", mock.Anything, "client").
		Return(env.applicationRow(t, 7, "client", "s3cret"), nil)

	apitest.New().
		Handler(env.resource.Router()).
		Post("/token").
		FormData("client_id", "client").
		FormData("client_secret", "s3cret").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(unauthorizedBody).
		End()
}
