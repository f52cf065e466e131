package cmd

import (
	"log"

	"github.com/grantrx/grantrx/db"
	"github.com/grantrx/grantrx/events"
	"github.com/grantrx/grantrx/tokens"
	"go.uber.org/zap"
)

func mustResolveUsableDataStore() *db.DataStore {
	var dataStore *db.DataStore
	var err error
	switch LoadedConfig.Database.Type {
	case "sqlite":
		dataStore, err = db.NewSqliteStore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	case "mysql":
		dataStore, err = db.NewMysqlStore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	case "pg":
		dataStore, err = db.NewPostgrestore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	default:
		log.Fatal("Unknown database type")
	}
	if err != nil {
		TopLevelLogger.Fatal("Failed to create datastore", zap.Error(err))
	}
	err = dataStore.EnsureUsable()
	if err != nil {
		TopLevelLogger.Fatal("Datastore is unusable", zap.Error(err))
	}
	return dataStore
}

func mustResolveFieldCipher() *tokens.FieldCipher {
	encodedKeyset, err := LoadedConfig.ResolveKeyset()
	if err != nil {
		TopLevelLogger.Fatal("Failed to load field cipher keyset", zap.Error(err))
	}
	cipher, err := tokens.NewFieldCipher(encodedKeyset)
	if err != nil {
		TopLevelLogger.Fatal("Failed to create field cipher", zap.Error(err))
	}
	return cipher
}

func bootstrapDispatcher(auditor db.Auditor) *events.Dispatcher {
	dispatcher := events.NewDispatcher(TopLevelLogger.Named("event_dispatcher"))
	//bootstrap listeners
	dbLayer := db.BootstrapListeners(auditor, TopLevelLogger.Named("event_listener"))
	dispatcher.Register(dbLayer...)
	return dispatcher
}
