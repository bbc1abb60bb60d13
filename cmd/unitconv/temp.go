package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/unitconv/internal/convert"
	"github.com/pdiddy/unitconv/internal/report"
	"github.com/pdiddy/unitconv/pkg/types"
)

var tempCmd = &cobra.Command{
	Use:     "temp <value> <from-unit> <to-unit>",
	Aliases: []string{"temperature"},
	Short:   "Convert a temperature value between Celsius, Fahrenheit, and Kelvin",
	Long: `Temp converts a value between temperature scales, pivoting through
Celsius. Units are matched case-insensitively on their first letter:
c/celsius, f/fahrenheit, k/kelvin.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, from, to, err := conversionArgs(args)
		if err != nil {
			return err
		}
		result, err := convert.Temperature(value, from, to)
		if err != nil {
			return err
		}
		conv := types.Conversion{
			Domain: types.DomainTemperature,
			Input:  types.Quantity{Value: value, Unit: from},
			Output: types.Quantity{Value: result, Unit: to},
		}
		return report.Write(cmd.OutOrStdout(), conv, outputConfig(cmd))
	},
}

func init() {
	tempCmd.Flags().String("format", "", "output format: text or yaml (default from config)")

	rootCmd.AddCommand(tempCmd)
}
