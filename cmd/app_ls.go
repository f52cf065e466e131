package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/grantrx/grantrx/application"
	"github.com/spf13/cobra"
)

var listApplicationsCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all applications",
	Long:  `This will list all registered client applications`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		dispatcher := bootstrapDispatcher(dataStore.Auditor())
		service := application.NewApplicationService(
			TopLevelLogger.Named("application_service"),
			dataStore,
			dispatcher)
		apps, total, err := service.List(context.Background(), 1, math.MaxInt)
		if err != nil {
			fmt.Printf("Unable to load applications: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%s \r\n",
			"ID",
			"ClientID",
			"Name",
			"HasSecret",
		)
		for _, v := range apps {
			fmt.Fprintf(
				w,
				"%d\t%s\t%s\t%v \r\n",
				v.ID(),
				v.ClientID(),
				v.Name(),
				v.HasSecret(),
			)
		}

		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", total)
		w.Flush()
	},
}
