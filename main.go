// Command hotel-desk is the front desk tool for a small hotel: rooms,
// guests and bookings kept in flat files (or SQLite/MySQL), driven from an
// interactive menu, one-shot commands or a local HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hotel-desk/config"
)

const (
	Version = "1.0.0"
	appName = "hotel-desk"
)

func main() {
	config.LoadDotEnv()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags override the matching config values when set.
type globalFlags struct {
	configPath string
	dataDir    string
	storage    string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Hotel front desk: rooms, guests and bookings",
		Long: `hotel-desk tracks rooms, guests and bookings for a small hotel.

Without a subcommand it starts the interactive menu. Data is read once at
startup and every change rewrites the stored collections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, &flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML, default hotel.yaml if present)")
	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the data files")
	cmd.PersistentFlags().StringVar(&flags.storage, "storage", "", "Storage backend: text, sqlite or mysql")

	cmd.AddCommand(
		menuCmd(&flags),
		roomCmd(&flags),
		bookCmd(&flags),
		checkoutCmd(&flags),
		bookingCmd(&flags),
		guestCmd(&flags),
		serveCmd(&flags),
		hashTokenCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
