// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"slices"

	"github.com/pdiddy/unitconv/pkg/types"
)

// pascalScale maps each pressure unit to its factor relative to pascal.
var pascalScale = &factorTable{
	domain: types.DomainPressure,
	units:  []string{"psi", "bar", "kpa", "mpa", "pa"},
	scale: map[string]float64{
		"psi": 6894.757,
		"bar": 100000,
		"kpa": 1000,
		"mpa": 1000000,
		"pa":  1,
	},
}

// Pressure converts value between pressure units, chaining through pascal.
// Unit tokens are matched case-insensitively against psi, bar, kpa, mpa,
// and pa.
func Pressure(value float64, fromUnit, toUnit string) (float64, error) {
	return pascalScale.convert(value, fromUnit, toUnit)
}

// PressureUnits returns the supported pressure unit tokens.
func PressureUnits() []string {
	return slices.Clone(pascalScale.units)
}
