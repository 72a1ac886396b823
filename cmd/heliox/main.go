package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heliox-inc/heliox/internal/interfaces/cli/createuser"
	"github.com/heliox-inc/heliox/internal/interfaces/cli/migrate"
	"github.com/heliox-inc/heliox/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heliox",
		Short: "Heliox - solar plant operations platform",
		Long:  `Heliox is the backend for the Heliox solar power plant operations platform, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		createuser.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
