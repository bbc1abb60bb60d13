// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how conversion results are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
)

// DisplayConfig holds settings for result rendering.
type DisplayConfig struct {
	// Format selects the rendering: text or yaml (default text).
	Format OutputFormat `json:"format" yaml:"format"`
}

// Config groups all settings for the converter CLI.
type Config struct {
	Output DisplayConfig `json:"output" yaml:"output"`
}
