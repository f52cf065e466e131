package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/grantrx/grantrx/db"
	"github.com/spf13/cobra"
)

var listGrantsCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all grants",
	Long:  `This will list all grants, token values stay encrypted`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		entries, total, err := dataStore.Grants(
			context.Background(),
			db.ListOptions{Page: 1, PageSize: math.MaxInt},
		)
		if err != nil {
			fmt.Printf("Unable to load grants: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%s\t%s \r\n",
			"ID",
			"UserID",
			"ApplicationID",
			"ExpiresAt",
			"CreatedAt",
		)
		for _, v := range entries {
			expires := "-"
			if v.AccessTokenExpiresAt != nil {
				expires = v.AccessTokenExpiresAt.String()
			}
			fmt.Fprintf(
				w,
				"%d\t%s\t%d\t%s\t%s \r\n",
				v.ID,
				v.UserID,
				v.ApplicationID,
				expires,
				v.CreatedAt,
			)
		}

		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", total)
		w.Flush()
	},
}
