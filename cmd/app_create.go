package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/grantrx/grantrx/application"
	"github.com/spf13/cobra"
)

var applicationCreateClientSecret string
var applicationCreateName string
var applicationCreateSkipIfExists bool

var createApplicationCommand = cobra.Command{
	Use:   "create",
	Short: "Creates a new client application",
	Long:  `this command can be used to register a new client application`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 || args[0] == "" {
			return errors.New("app create (client_id) - requires a client_id")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		dispatcher := bootstrapDispatcher(dataStore.Auditor())
		service := application.NewApplicationService(
			TopLevelLogger.Named("application_service"),
			dataStore,
			dispatcher)
		fmt.Printf("Creating application with client_id: %s\r\n", args[0])
		id, err := service.Create(cmd.Context(),
			args[0],
			applicationCreateClientSecret,
			applicationCreateName)
		if err != nil {
			fmt.Printf("Could not create new application: %s\r\n", err)
			if applicationCreateSkipIfExists && errors.Is(err, application.ErrClientIDExists) {
				return
			}
			os.Exit(1)
			return
		}
		fmt.Printf("Created new application with internal id: %d\r\n", id)
	},
}

func init() {
	createApplicationCommand.Flags().StringVarP(&applicationCreateClientSecret, "secret", "s", "", "the client secret for the application")
	createApplicationCommand.Flags().StringVarP(&applicationCreateName, "name", "n", "", "the name of the application")
	createApplicationCommand.Flags().BoolVarP(&applicationCreateSkipIfExists, "skip-if-exists", "k", false, "skips creation if client_id already exists and returns no error code")
}
