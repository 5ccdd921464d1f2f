// Package cmd provides the CLI commands for wedding-billing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wedding-billing/internal/config"
	"wedding-billing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wedding-billing",
	Short: "Price wedding service bookings and compute cancellation settlements",
	Long: `wedding-billing is the marketplace's financial computation engine.

It prices service listings under their pricing policies and computes
cancellation fees and settlement payments from booking snapshots.

Examples:
  wedding-billing quote booking.json
  wedding-billing settle --at 2026-06-01T00:00:00Z cancellation.json
  wedding-billing validate request.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wedding-billing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(settleCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wedding-billing version 0.1.0")
	},
}
