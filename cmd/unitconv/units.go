package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/unitconv/internal/convert"
	"github.com/pdiddy/unitconv/internal/report"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported units for each domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := report.Units{
			Pressure:    convert.PressureUnits(),
			Temperature: convert.TemperatureUnits(),
			Flow:        convert.FlowUnits(),
		}
		return report.WriteUnits(cmd.OutOrStdout(), u, outputConfig(cmd))
	},
}

func init() {
	unitsCmd.Flags().String("format", "", "output format: text or yaml (default from config)")

	rootCmd.AddCommand(unitsCmd)
}
