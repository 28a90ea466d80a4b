package main

import (
	"os"

	"github.com/spf13/cobra"

	"bookworm/internal/interfaces/cli/renew"
	"bookworm/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookworm",
		Short: "Bookworm - bookstore backend",
		Long:  `Bookworm is an online bookstore backend with a purchase ledger, subscriptions and payment gateway integration.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		renew.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
