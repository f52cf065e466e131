package cmd

import (
	"fmt"
	"os"

	"github.com/grantrx/grantrx/generator"
	"github.com/grantrx/grantrx/tokens"
	"github.com/spf13/cobra"
)

var keySize int32 = 32

var keyCommand = cobra.Command{
	Use:   "random-key",
	Short: "generates a random key",
	Long:  `generates a cryptographic secure random key`,
	Run: func(cmd *cobra.Command, args []string) {
		key := generator.New().CreateSecureTokenWithSize(int(keySize))
		fmt.Println(key)
	},
}

var keysetCommand = cobra.Command{
	Use:   "keyset",
	Short: "generates a field cipher keyset",
	Long:  `generates a fresh deterministic AEAD keyset for the token field cipher, put the output into cipher.keyset`,
	Run: func(cmd *cobra.Command, args []string) {
		keyset, err := tokens.GenerateKeyset()
		if err != nil {
			fmt.Printf("Unable to generate keyset: %s", err)
			os.Exit(1)
			return
		}
		fmt.Println(keyset)
	},
}

func init() {
	keyCommand.Flags().Int32VarP(&keySize, "size", "s", 64, "sets key size")
}
