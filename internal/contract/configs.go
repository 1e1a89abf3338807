// Package contract holds the validated configuration and the shared
// helpers used across commands and writers.
package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/whatsmygrade/core"
	"github.com/huangsam/whatsmygrade/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 4
)

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath string

	// PassingGrade is the fallback threshold used when the grade file's
	// [config] section does not set one.
	PassingGrade float64

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	PassingGrade float64 `mapstructure:"passing-grade"`
	Precision    int     `mapstructure:"precision"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Width        int     `mapstructure:"width"`
	Color        string  `mapstructure:"color"`
	NoColor      bool    `mapstructure:"no-color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 1. Passing grade fallback ---
	if input.PassingGrade < 0 || input.PassingGrade > 1 {
		return fmt.Errorf("passing-grade must be between 0.0 and 1.0 (received %.2f)", input.PassingGrade)
	}
	cfg.PassingGrade = input.PassingGrade

	// --- 2. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 4. Color resolution ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	if input.NoColor {
		// --no-color always wins over --color and config file values.
		cfg.UseColors = false
	}

	return nil
}

// NewDefaultConfig returns a Config with library defaults, for callers that
// bypass the flag pipeline (e.g. the MCP server).
func NewDefaultConfig() *Config {
	return &Config{
		PassingGrade: core.DefaultPassingGrade,
		Precision:    DefaultPrecision,
		Output:       schema.TextOut,
		UseColors:    false,
	}
}
