package main

import (
	"os"

	"github.com/spf13/cobra"

	"fibernet/internal/interfaces/cli/migrate"
	"fibernet/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibernet",
		Short: "Fibernet - fiber network inventory and deployment backend",
		Long:  `Fibernet manages network equipment inventory, the headend to splitter topology, customer onboarding and field deployment tasks for a fiber ISP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
