package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/unitconv/internal/convert"
	"github.com/pdiddy/unitconv/internal/report"
	"github.com/pdiddy/unitconv/pkg/types"
)

var pressureCmd = &cobra.Command{
	Use:   "pressure <value> <from-unit> <to-unit>",
	Short: "Convert a pressure value between psi, bar, kpa, mpa, and pa",
	Long: `Pressure converts a value between pressure units by chaining through
pascal. Units are matched case-insensitively: psi, bar, kpa, mpa, pa.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, from, to, err := conversionArgs(args)
		if err != nil {
			return err
		}
		result, err := convert.Pressure(value, from, to)
		if err != nil {
			return err
		}
		conv := types.Conversion{
			Domain: types.DomainPressure,
			Input:  types.Quantity{Value: value, Unit: from},
			Output: types.Quantity{Value: result, Unit: to},
		}
		return report.Write(cmd.OutOrStdout(), conv, outputConfig(cmd))
	},
}

func init() {
	pressureCmd.Flags().String("format", "", "output format: text or yaml (default from config)")

	rootCmd.AddCommand(pressureCmd)
}
