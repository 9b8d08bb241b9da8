package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/footprint"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration for semantic correctness.

This includes:
- Output format, precision and chart width
- Emission factors: finite, non-negative, with an entry for every diet,
  shopping frequency and recycling habit, and recycling credits <= 0
- Server address and read timeout`,
		Example: `  # Validate current configuration
  footprint config validate

  # Validate and show detailed information
  footprint config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Chart width: %d\n", cfg.Output.ChartWidth)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)

	printFactorDetails(cmd, cfg.Factors)
}

// printFactorDetails prints the emission factor tables in enum order.
func printFactorDetails(cmd *cobra.Command, f footprint.EmissionFactors) {
	cmd.Println("  Emission factors:")
	cmd.Printf("    car: %g kg/mile\n", f.CarKgPerMile)
	cmd.Printf("    flights: %g kg/round trip\n", f.FlightKgPerRoundTrip)
	cmd.Printf("    electricity: %g kg/kWh\n", f.ElectricityKgPerKWh)
	for _, d := range footprint.Diets() {
		cmd.Printf("    diet %s: %g kg\n", d, f.Diet[d])
	}
	for _, s := range footprint.ShoppingFrequencies() {
		cmd.Printf("    shopping %s: %g kg\n", s, f.Shopping[s])
	}
	for _, r := range footprint.RecyclingHabits() {
		cmd.Printf("    recycling %s: %g kg\n", r, f.Recycling[r])
	}
}
