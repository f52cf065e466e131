package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/grantrx/grantrx/cmd"
	"github.com/grantrx/grantrx/config"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	Version   = "?"
	BuildTime = "?"
	GitCommit = "-"
	GitRef    = "-"
)

func main() {
	//version info
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("grantrx %s, built %s from %s (%s)", Version, BuildTime, GitCommit, GitRef)
		return
	}
	logger := bootstrap()
	defer func() {
		_ = logger.Sync()

	}()
	cmd.TopLevelLogger = logger
	cmd.Execute()
}

func bootstrap() *zap.Logger {
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}
	cfg := zap.NewProductionConfig()
	if r := os.Getenv("DEBUG_LOG"); r == "true" {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		log.Fatal(err)
	}
	cobra.OnInitialize(func() { initConfig(logger) })
	return logger
}

func setDefaults() {
	viper.SetDefault("server.address", "")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("grants.requestable-permissions", []string{"read", "write"})
	// zero means access tokens never expire
	viper.SetDefault("grants.require-refresh-within", "0s")
}

func initConfig(logger *zap.Logger) {
	bind := func(from string, to string) {
		err := viper.BindEnv(to, from)
		if err != nil {
			logger.Error("unable to bindenv", zap.String("from", from), zap.String(to, to), zap.Error(err))
		}

	}
	setDefaults()
	bind("PORT", "server.port")
	bind("ADDRESS", "server.address")

	bind("GRX_PORT", "server.port")
	bind("GRX_ADDRESS", "server.address")

	bind("GRX_DATABASE_TYPE", "database.type")
	bind("GRX_DATABASE_DSN", "database.dsn")

	bind("GRX_GRANTS_REQUESTABLE_PERMISSIONS", "grants.requestable-permissions")
	bind("GRX_GRANTS_REQUIRE_REFRESH_WITHIN", "grants.require-refresh-within")

	bind("GRX_CIPHER_KEYSET", "cipher.keyset")
	bind("GRX_CIPHER_KEYSET_FILE", "cipher.keyset-file")

	bind("GRX_CORS_ALLOWED_ORIGINS", "cors.allowed-origins")
	bind("GRX_CORS_ALLOWED_METHODS", "cors.allowed-methods")
	bind("GRX_CORS_ALLOW_CREDENTIALS", "cors.allow-credentials")

	if cmd.ConfigFileLocation != "" {
		logger.Debug("Using supplied config file", zap.String("file", string(cmd.ConfigFileLocation)))
		viper.SetConfigFile(string(cmd.ConfigFileLocation))
	} else {
		path, err := os.Getwd()
		if err != nil {
			logger.Warn("Unable to get current working dir", zap.Error(err))
		}
		cobra.CheckErr(err)
		viper.AddConfigPath(path)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		logger.Debug("Looking for default config file")
	}
	//precedence: environment overwrites yml
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Debug("No confg file loaded")
	} else {
		logger.Debug("Config file loaded", zap.String("file", viper.ConfigFileUsed()))
	}

	conf := &config.Configuration{}
	err := viper.Unmarshal(conf)
	if err != nil {
		logger.Fatal("Unable to unmarshall config", zap.Error(err))
	}
	logger.Debug("Config loaded", zap.Any("config", conf))
	logger.Debug("Validating final config")
	if err = conf.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	cmd.LoadedConfig = conf
}
