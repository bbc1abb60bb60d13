// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the unitconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/unitconv/internal/selftest"
	"github.com/pdiddy/unitconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the unitconv CLI. Run without arguments
// it executes the built-in self-test suite.
var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Engineering unit converter for pressure, temperature, and flow",
	Long: `unitconv converts scalar values between engineering units in three
independent domains: pressure (psi, bar, kpa, mpa, pa), temperature
(celsius, fahrenheit, kelvin), and flow rate (gpm, lpm, m3/h).

Each domain is a subcommand taking a value, a source unit, and a target
unit. Running unitconv with no arguments executes the built-in self-test
suite and exits 0.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Running self-test...")
		fmt.Fprintln(out)
		selftest.Run(out)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./unitconv.yaml or ~/.config/unitconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("unitconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "unitconv"))
		}
	}

	viper.SetEnvPrefix("UNITCONV")
	viper.AutomaticEnv()
	viper.SetDefault("output.format", string(types.OutputText))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// outputConfig resolves the display configuration for cmd. A --format flag
// set on the command overrides the configured default.
func outputConfig(cmd *cobra.Command) types.DisplayConfig {
	format := viper.GetString("output.format")
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	return types.DisplayConfig{Format: types.OutputFormat(format)}
}

// conversionArgs parses the shared <value> <from-unit> <to-unit> argument
// triple of the conversion subcommands.
func conversionArgs(args []string) (value float64, fromUnit, toUnit string, err error) {
	value, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, "", "", fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	return value, args[1], args[2], nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
