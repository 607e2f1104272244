package main

import (
	"os"

	"github.com/spf13/cobra"

	"guildesk/internal/interfaces/cli/migrate"
	"guildesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "guildesk",
		Short: "Guildesk - guild ticket tracking backend",
		Long:  `Guildesk is the backend for a guild ticket tracking application, with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
