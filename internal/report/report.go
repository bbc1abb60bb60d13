// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders completed conversions for the CLI, either as the
// fixed one-line text form or as YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/unitconv/pkg/types"
)

// decimals returns the fixed display precision for a domain: two places
// for temperature, four for pressure and flow.
func decimals(d types.Domain) int {
	if d == types.DomainTemperature {
		return 2
	}
	return 4
}

// Text returns the one-line rendering of a conversion, echoing the input
// value and unit. Temperature lines carry degree signs and uppercased
// unit tokens.
func Text(conv types.Conversion) string {
	if conv.Domain == types.DomainTemperature {
		return fmt.Sprintf("%g°%s = %.2f°%s",
			conv.Input.Value, strings.ToUpper(conv.Input.Unit),
			conv.Output.Value, strings.ToUpper(conv.Output.Unit))
	}
	return fmt.Sprintf("%g %s = %.*f %s",
		conv.Input.Value, conv.Input.Unit,
		decimals(conv.Domain), conv.Output.Value, conv.Output.Unit)
}

// Write renders conv to w in the configured format. An empty format means
// text.
func Write(w io.Writer, conv types.Conversion, cfg types.DisplayConfig) error {
	switch cfg.Format {
	case types.OutputYAML:
		data, err := yaml.Marshal(conv)
		if err != nil {
			return fmt.Errorf("encoding conversion: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.OutputText, "":
		_, err := fmt.Fprintln(w, Text(conv))
		return err
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// Units groups the supported unit tokens of every domain for the units
// listing.
type Units struct {
	Pressure    []string `json:"pressure" yaml:"pressure"`
	Temperature []string `json:"temperature" yaml:"temperature"`
	Flow        []string `json:"flow" yaml:"flow"`
}

// WriteUnits renders the unit listing to w in the configured format.
func WriteUnits(w io.Writer, u Units, cfg types.DisplayConfig) error {
	switch cfg.Format {
	case types.OutputYAML:
		data, err := yaml.Marshal(u)
		if err != nil {
			return fmt.Errorf("encoding unit listing: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.OutputText, "":
		fmt.Fprintf(w, "pressure:    %s\n", strings.Join(u.Pressure, ", "))
		fmt.Fprintf(w, "temperature: %s\n", strings.Join(u.Temperature, ", "))
		fmt.Fprintf(w, "flow:        %s\n", strings.Join(u.Flow, ", "))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}
