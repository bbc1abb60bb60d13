// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Domain identifies one of the supported physical quantity domains.
type Domain string

const (
	DomainPressure    Domain = "pressure"
	DomainTemperature Domain = "temperature"
	DomainFlow        Domain = "flow"
)

// Quantity is a scalar value paired with its unit token. Quantities are
// transient; nothing outlives a single conversion call.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Conversion records one completed unit conversion for rendering.
type Conversion struct {
	Domain Domain   `json:"domain" yaml:"domain"`
	Input  Quantity `json:"input" yaml:"input"`
	Output Quantity `json:"output" yaml:"output"`
}
