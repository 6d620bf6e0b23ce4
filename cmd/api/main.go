package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title MedVault API
// @version 1.0
// @description Doctor and patient records.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:          "medvault",
		Short:        "Doctor and patient records API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
