package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "falcon",
	Short: "Falcon e-commerce GraphQL gateway",
}

// Execute runs the CLI with all built-in and registered commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaPrintCmd)
	rootCmd.AddCommand(extensionsListCmd)
}
