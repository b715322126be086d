// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// setFloatEnv assigns a parsed float to dst if the value is valid.
func setFloatEnv(dst *float64, val string) {
	if parsed, err := strconv.ParseFloat(val, 64); err == nil {
		*dst = parsed
	}
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the VO2CALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with VO2CALC_):
//   - PROTOCOL, SEX, WEIGHT, POWER, FINAL_STAGE, SECONDS, FTP,
//     STAGE_INCREMENT, STAGE_DURATION, OUTPUT, THEME, QUIET, VERBOSE,
//     NO_COLOR, TUI, METRICS_ADDR
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet, protocolName, sexName *string) {
	overrides := []envOverride{
		// String overrides
		{"PROTOCOL", []string{"protocol", "p"}, func(_ *AppConfig, v string) { *protocolName = v }},
		{"SEX", []string{"sex"}, func(_ *AppConfig, v string) { *sexName = v }},
		{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
		{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) { c.MetricsAddr = v }},
		{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},

		// Numeric overrides
		{"WEIGHT", []string{"weight", "w"}, func(c *AppConfig, v string) { setFloatEnv(&c.WeightKg, v) }},
		{"POWER", []string{"power"}, func(c *AppConfig, v string) { setFloatEnv(&c.PowerW, v) }},
		{"FINAL_STAGE", []string{"final-stage"}, func(c *AppConfig, v string) { setFloatEnv(&c.FinalStagePowerW, v) }},
		{"SECONDS", []string{"seconds"}, func(c *AppConfig, v string) { setFloatEnv(&c.SecondsIntoFinalStage, v) }},
		{"FTP", []string{"ftp"}, func(c *AppConfig, v string) { setFloatEnv(&c.FTPW, v) }},
		{"STAGE_INCREMENT", []string{"stage-increment"}, func(c *AppConfig, v string) { setFloatEnv(&c.StageIncrementW, v) }},
		{"STAGE_DURATION", []string{"stage-duration"}, func(c *AppConfig, v string) { setFloatEnv(&c.StageDurationSec, v) }},

		// Boolean overrides
		{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
		{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
		{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
		{"TUI", []string{"tui"}, func(c *AppConfig, v string) { c.TUI = parseBoolEnv(v, c.TUI) }},
	}

	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
