// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements scalar unit conversion for pressure,
// temperature, and flow rate. Each domain is an independent pure function:
// pressure and flow chain through a fixed base unit via a factor table,
// temperature pivots through Celsius. No state is shared or mutated, so
// every function is safe for concurrent use.
package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/unitconv/pkg/types"
)

// UnsupportedUnitError reports a unit token outside a domain's valid set.
type UnsupportedUnitError struct {
	Domain types.Domain
	Unit   string
	Valid  []string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported %s unit %q (use: %s)",
		e.Domain, e.Unit, strings.Join(e.Valid, ", "))
}

// factorTable maps unit tokens to their scale relative to the domain's
// base unit. The base unit maps to 1; every token appears exactly once.
// units lists the tokens in presentation order for errors and help text,
// which may include aliases not present as scale keys.
type factorTable struct {
	domain types.Domain
	units  []string
	scale  map[string]float64
}

// factor returns the scale for unit, matched case-insensitively.
func (t *factorTable) factor(unit string) (float64, error) {
	f, ok := t.scale[strings.ToLower(unit)]
	if !ok {
		return 0, &UnsupportedUnitError{Domain: t.domain, Unit: unit, Valid: t.units}
	}
	return f, nil
}

// convert scales value from one unit to another through the base unit.
func (t *factorTable) convert(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := t.factor(fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := t.factor(toUnit)
	if err != nil {
		return 0, err
	}
	return value * from / to, nil
}
