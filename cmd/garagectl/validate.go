package main

import (
	"fmt"
	"os"

	"github.com/garagekit/garagekit/pkg/facility"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a facility configuration file",
		Long: `The validate command loads a facility configuration file, applies the
defaults, and checks the result without building a facility.

Example:
  garagectl validate facility.yaml
  garagectl validate facility.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	printVerbose("Validating config: %s\n", path)

	// LoadConfig tolerates a missing file by falling back to defaults,
	// which would make a typo'd path validate silently. An explicit path
	// must exist.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := facility.LoadConfig(path)

	// Prepare result
	result := map[string]interface{}{
		"file":  path,
		"valid": err == nil,
	}

	if err == nil {
		strategyName := cfg.Strategy
		if strategyName == "" {
			strategyName = facility.DefaultConfig().Strategy
		}
		result["max_levels"] = cfg.MaxLevels
		result["level_capacity"] = cfg.LevelCapacity
		result["strategy"] = strategyName
	} else {
		result["error"] = err.Error()
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	// Text output
	printInfo("\nValidating %s...\n\n", path)

	if err != nil {
		printInfo("  ✗ %v\n", err)
		printInfo("\nResult: ✗ INVALID\n")
		return err
	}

	printInfo("  Max levels:     %d\n", cfg.MaxLevels)
	printInfo("  Level capacity: %d\n", cfg.LevelCapacity)
	printInfo("  Strategy:       %s\n", result["strategy"])
	printInfo("\nResult: ✓ VALID\n")

	return nil
}
