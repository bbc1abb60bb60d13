// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"slices"
	"strings"

	"github.com/pdiddy/unitconv/pkg/types"
)

// lpmScale maps each flow unit to its factor relative to liters per
// minute. m3/h is normalized to m3h before lookup, so the table carries a
// single entry for both spellings.
var lpmScale = &factorTable{
	domain: types.DomainFlow,
	units:  []string{"gpm", "lpm", "m3h", "m3/h"},
	scale: map[string]float64{
		"gpm": 3.78541,
		"lpm": 1,
		"m3h": 16.6667,
	},
}

// Flow converts value between flow-rate units, chaining through liters per
// minute. Unit tokens are matched case-insensitively against gpm, lpm, and
// m3h; any "/" in a token is stripped first, so "m3/h" and "m3h" are the
// same key.
func Flow(value float64, fromUnit, toUnit string) (float64, error) {
	from := strings.ReplaceAll(fromUnit, "/", "")
	to := strings.ReplaceAll(toUnit, "/", "")
	return lpmScale.convert(value, from, to)
}

// FlowUnits returns the supported flow unit tokens.
func FlowUnits() []string {
	return slices.Clone(lpmScale.units)
}
