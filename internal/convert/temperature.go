// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"slices"
	"strings"

	"github.com/pdiddy/unitconv/pkg/types"
)

// temperatureUnits lists the accepted temperature tokens in presentation
// order. Matching uses only the first character, so the long forms and the
// single-letter abbreviations are equivalent.
var temperatureUnits = []string{"c", "celsius", "f", "fahrenheit", "k", "kelvin"}

// Temperature converts value between Celsius, Fahrenheit, and Kelvin,
// pivoting through Celsius. Only the first character of a unit token is
// significant after lowercasing: "fahrenheit" and "f" are the same unit,
// and any token starting with c, f, or k is accepted even when the rest is
// malformed ("kxyz" is Kelvin). This quirk is kept for compatibility with
// existing callers.
func Temperature(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := temperatureKey(fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := temperatureKey(toUnit)
	if err != nil {
		return 0, err
	}

	var celsius float64
	switch from {
	case 'c':
		celsius = value
	case 'f':
		celsius = (value - 32) * 5 / 9
	case 'k':
		celsius = value - 273.15
	}

	switch to {
	case 'f':
		return celsius*9/5 + 32, nil
	case 'k':
		return celsius + 273.15, nil
	default:
		return celsius, nil
	}
}

// TemperatureUnits returns the supported temperature unit tokens.
func TemperatureUnits() []string {
	return slices.Clone(temperatureUnits)
}

// temperatureKey reduces a unit token to its significant first character.
func temperatureKey(unit string) (byte, error) {
	s := strings.ToLower(unit)
	if len(s) > 0 {
		switch s[0] {
		case 'c', 'f', 'k':
			return s[0], nil
		}
	}
	return 0, &UnsupportedUnitError{
		Domain: types.DomainTemperature,
		Unit:   unit,
		Valid:  temperatureUnits,
	}
}
