package cmd

import (
	"github.com/grantrx/grantrx/api"
	"github.com/grantrx/grantrx/application"
	"github.com/grantrx/grantrx/grants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCommand = cobra.Command{
	Use:   "serve",
	Short: "starts the http server",
	Long:  `Starts a http server and serves the token endpoint`,
	Run: func(cmd *cobra.Command, args []string) {
		//this is our composite root

		//setup datastore
		dataStore := mustResolveUsableDataStore()

		//setup the field cipher for tokens at rest
		cipher := mustResolveFieldCipher()

		//events dispatcher
		dispatcher := bootstrapDispatcher(dataStore.Auditor())

		//setup business services
		appService := application.NewApplicationService(
			TopLevelLogger.Named("application_service"),
			dataStore,
			dispatcher,
		)
		grantService := grants.NewGrantService(
			TopLevelLogger.Named("grant_service"),
			dataStore,
			cipher,
			appService,
			dispatcher,
			LoadedConfig.Grants,
		)

		server, err := api.NewServer(LoadedConfig, TopLevelLogger.Named("server"),
			grantService,
			appService,
		)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create server", zap.Error(err))
		}
		server.Start()
		TopLevelLogger.Info("Shutdown complete")
	},
}

func init() {
	viper.SetDefault("port", "3000")
	viper.SetDefault("log_level", "debug")
}
