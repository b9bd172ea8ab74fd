package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parkgate-inc/parkgate/internal/interfaces/cli/migrate"
	"github.com/parkgate-inc/parkgate/internal/interfaces/cli/server"
	"github.com/parkgate-inc/parkgate/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parkgate",
		Short: "Parkgate - Parking facility management service",
		Long:  `Parkgate runs the parking session API along with migration and administrative tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
