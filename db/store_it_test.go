//go:build integration
// +build integration

package db

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grantrx/grantrx/config"
	"github.com/grantrx/grantrx/db/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type DatabaseIntegrationTestSuite struct {
	suite.Suite
	dataStore *DataStore
	dbType    string
	dsn       string
}

func (s *DatabaseIntegrationTestSuite) SetupTest() {
	//reset to clean state
	switch s.dbType {
	case "sqlite":
		//just reopen for :memory:
		dataStore, err := NewSqliteStore(zap.NewNop(), &config.DatabaseConfiguration{
			Type: s.dbType,
			DSN:  s.dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	case "pg":
		s.dataStore.db.MustExec("DROP SCHEMA public CASCADE;")
		s.dataStore.db.MustExec("CREATE SCHEMA public;")
	case "mysql":
		s.dataStore.db.MustExec("DROP DATABASE IF EXISTS grantrx;")
		s.dataStore.db.MustExec("CREATE DATABASE grantrx;")
		s.dataStore.db.MustExec("USE grantrx;")
	}

	err := s.dataStore.EnsureUsable()
	assert.NoError(s.T(), err)
}

func (s *DatabaseIntegrationTestSuite) createApplication(clientID string) int {
	id, err := s.dataStore.CreateApplication(context.Background(), clientID, nil, "test app")
	assert.NoError(s.T(), err)
	assert.Greater(s.T(), id, 0)
	return id
}

// Applications part

func (s *DatabaseIntegrationTestSuite) TestCreateApplication() {
	id := s.createApplication("test-client")
	app, err := s.dataStore.ApplicationByID(context.Background(), id)
	assert.NoError(s.T(), err)
	if assert.NotNil(s.T(), app) {
		assert.Equal(s.T(), "test-client", app.ClientID)
		assert.Equal(s.T(), "test app", app.Name)
		assert.Nil(s.T(), app.ClientSecret)
	}
}

func (s *DatabaseIntegrationTestSuite) TestApplicationByClientID() {
	s.createApplication("by-client-id")
	app, err := s.dataStore.ApplicationByClientID(context.Background(), "by-client-id")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "by-client-id", app.ClientID)
}

func (s *DatabaseIntegrationTestSuite) TestApplicationByClientIDNotFound() {
	_, err := s.dataStore.ApplicationByClientID(context.Background(), "does-not-exist")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestCreateApplicationDuplicateClientID() {
	s.createApplication("taken")
	_, err := s.dataStore.CreateApplication(context.Background(), "taken", nil, "test app")
	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *DatabaseIntegrationTestSuite) TestApplicationsPagination() {
	s.createApplication("app-one")
	s.createApplication("app-two")
	s.createApplication("app-three")
	apps, total, err := s.dataStore.Applications(
		context.Background(),
		ListOptions{Page: 1, PageSize: 2},
	)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 3, total)
	assert.Len(s.T(), apps, 2)
}

// Grants part

func (s *DatabaseIntegrationTestSuite) TestInsertGrantAndFetch() {
	appID := s.createApplication("grant-app")
	uid := uuid.New()
	id, err := s.dataStore.InsertGrant(
		context.Background(),
		uid,
		appID,
		tables.MapStructure{"read": true, "write": true},
	)
	assert.NoError(s.T(), err)
	assert.Greater(s.T(), id, 0)

	grant, err := s.dataStore.GrantByID(context.Background(), id)
	assert.NoError(s.T(), err)
	if assert.NotNil(s.T(), grant) {
		assert.Equal(s.T(), uid, grant.UserID)
		assert.Equal(s.T(), appID, grant.ApplicationID)
		assert.Nil(s.T(), grant.Code)
		assert.Nil(s.T(), grant.AccessToken)
		assert.Nil(s.T(), grant.RefreshToken)
		assert.Nil(s.T(), grant.AccessTokenExpiresAt)
		assert.Equal(s.T(), true, grant.Permissions["read"])
		assert.Equal(s.T(), true, grant.Permissions["write"])
	}

	byPair, err := s.dataStore.GrantByUserAndApplication(context.Background(), uid, appID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), id, byPair.ID)
}

func (s *DatabaseIntegrationTestSuite) TestGrantByIDNotFound() {
	_, err := s.dataStore.GrantByID(context.Background(), 424242)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestInsertGrantDuplicatePair() {
	appID := s.createApplication("pair-app")
	uid := uuid.New()
	_, err := s.dataStore.InsertGrant(context.Background(), uid, appID, tables.MapStructure{})
	assert.NoError(s.T(), err)
	_, err = s.dataStore.InsertGrant(context.Background(), uid, appID, tables.MapStructure{})
	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *DatabaseIntegrationTestSuite) TestUpdateGrantTokens() {
	appID := s.createApplication("token-app")
	id, err := s.dataStore.InsertGrant(
		context.Background(),
		uuid.New(),
		appID,
		tables.MapStructure{},
	)
	assert.NoError(s.T(), err)

	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	err = s.dataStore.UpdateGrantTokens(
		context.Background(),
		id,
		"enc-code",
		"enc-access",
		"enc-refresh",
		&expiresAt,
	)
	assert.NoError(s.T(), err)

	grant, err := s.dataStore.GrantByID(context.Background(), id)
	assert.NoError(s.T(), err)
	if assert.NotNil(s.T(), grant.AccessToken) {
		assert.Equal(s.T(), "enc-access", *grant.AccessToken)
	}
	if assert.NotNil(s.T(), grant.AccessTokenExpiresAt) {
		assert.WithinDuration(s.T(), expiresAt, *grant.AccessTokenExpiresAt, time.Second)
	}
}

func (s *DatabaseIntegrationTestSuite) TestUpdateGrantTokensCollision() {
	appID := s.createApplication("collision-app")
	first, err := s.dataStore.InsertGrant(
		context.Background(),
		uuid.New(),
		appID,
		tables.MapStructure{},
	)
	assert.NoError(s.T(), err)
	second, err := s.dataStore.InsertGrant(
		context.Background(),
		uuid.New(),
		appID,
		tables.MapStructure{},
	)
	assert.NoError(s.T(), err)

	err = s.dataStore.UpdateGrantTokens(context.Background(), first, "c1", "a1", "r1", nil)
	assert.NoError(s.T(), err)

	// the unique index on access_token rejects the second write
	err = s.dataStore.UpdateGrantTokens(context.Background(), second, "c2", "a1", "r2", nil)
	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *DatabaseIntegrationTestSuite) TestUpdateGrantTokensUnknownGrant() {
	err := s.dataStore.UpdateGrantTokens(context.Background(), 424242, "c", "a", "r", nil)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestUpdateGrantPermissions() {
	appID := s.createApplication("perm-app")
	id, err := s.dataStore.InsertGrant(
		context.Background(),
		uuid.New(),
		appID,
		tables.MapStructure{"read": true, "write": true},
	)
	assert.NoError(s.T(), err)

	err = s.dataStore.UpdateGrantPermissions(
		context.Background(),
		id,
		tables.MapStructure{"read": true},
	)
	assert.NoError(s.T(), err)

	grant, err := s.dataStore.GrantByID(context.Background(), id)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), true, grant.Permissions["read"])
	_, ok := grant.Permissions["write"]
	assert.False(s.T(), ok)
}

func (s *DatabaseIntegrationTestSuite) TestGrantsPagination() {
	appID := s.createApplication("page-app")
	for i := 0; i < 3; i++ {
		_, err := s.dataStore.InsertGrant(
			context.Background(),
			uuid.New(),
			appID,
			tables.MapStructure{},
		)
		assert.NoError(s.T(), err)
	}
	grants, total, err := s.dataStore.Grants(
		context.Background(),
		ListOptions{Page: 1, PageSize: 2},
	)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 3, total)
	assert.Len(s.T(), grants, 2)
}

func TestDatabaseSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration tests")
	}
	s := &DatabaseIntegrationTestSuite{}
	logger := zaptest.NewLogger(t)
	dbType := os.Getenv("INTEGRATION_TEST_DB_TYPE")
	dsn := os.Getenv("INTEGRATION_TEST_DB_DSN")
	switch dbType {
	case "mysql":
		dataStore, err := NewMysqlStore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	case "pg":
		dataStore, err := NewPostgrestore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	default:
		dbType = "sqlite"
		if dsn == "" {
			dsn = ":memory:"
		}
		dataStore, err := NewSqliteStore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	}
	s.dbType = dbType
	s.dsn = dsn
	suite.Run(t, s)
}
