package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/unitconv/internal/convert"
	"github.com/pdiddy/unitconv/internal/report"
	"github.com/pdiddy/unitconv/pkg/types"
)

var flowCmd = &cobra.Command{
	Use:   "flow <value> <from-unit> <to-unit>",
	Short: "Convert a flow-rate value between gpm, lpm, and m3/h",
	Long: `Flow converts a value between flow-rate units by chaining through
liters per minute. Units are matched case-insensitively: gpm, lpm, m3h
(m3/h is accepted as the same unit).`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, from, to, err := conversionArgs(args)
		if err != nil {
			return err
		}
		result, err := convert.Flow(value, from, to)
		if err != nil {
			return err
		}
		conv := types.Conversion{
			Domain: types.DomainFlow,
			Input:  types.Quantity{Value: value, Unit: from},
			Output: types.Quantity{Value: result, Unit: to},
		}
		return report.Write(cmd.OutOrStdout(), conv, outputConfig(cmd))
	},
}

func init() {
	flowCmd.Flags().String("format", "", "output format: text or yaml (default from config)")

	rootCmd.AddCommand(flowCmd)
}
