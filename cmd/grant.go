package cmd

import (
	"github.com/spf13/cobra"
)

var grantCommand = cobra.Command{
	Use:   "grant",
	Short: "grant commands",
	Long:  `this section harbors the grant commands`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
