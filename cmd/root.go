package cmd

import (
	"fmt"
	"os"

	"github.com/grantrx/grantrx/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ConfigFileLocation is of the config to load
var ConfigFileLocation string

// TopLevelLogger is the logger all loggers come from
var TopLevelLogger *zap.Logger

// LoadedConfig is the currently loaded configuration after initial bootstrapping
var LoadedConfig *config.Configuration

var rootCommand = cobra.Command{
	Use:   "grantrx",
	Short: "grantrx an opaque oauth token service",
	Long: `grantrx issues, validates and refreshes opaque access,
	refresh and authorization code tokens bound to a user and a client application`,
	Run: func(cmd *cobra.Command, args []string) {
		serveCommand.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {

	rootCommand.PersistentFlags().
		StringVar(&ConfigFileLocation, "config", "", "config file to be used")

	applicationCommand.AddCommand(&createApplicationCommand)
	applicationCommand.AddCommand(&listApplicationsCommand)

	grantCommand.AddCommand(&listGrantsCommand)

	rootCommand.AddCommand(&applicationCommand)
	rootCommand.AddCommand(&grantCommand)
	rootCommand.AddCommand(&serveCommand)
	rootCommand.AddCommand(&keyCommand)
	rootCommand.AddCommand(&keysetCommand)
}
