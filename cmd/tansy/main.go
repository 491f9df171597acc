package main

import (
	"os"

	"github.com/spf13/cobra"

	"tansy/internal/interfaces/cli/export"
	"tansy/internal/interfaces/cli/migrate"
	"tansy/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tansy",
		Short: "Tansy - a single-user support ticket tracker",
		Long:  `Tansy tracks support tickets in a local SQLite store: create, filter, search, edit, comment on, and export tickets.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		export.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
