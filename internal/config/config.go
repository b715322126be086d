// Package config centralizes command-line and environment configuration for
// the application. Priority is CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "VO2CALC_"

// Input range limits enforced at the configuration boundary. These mirror the
// form constraints of the interactive front end; the calculation module only
// requires positivity.
const (
	MinWeightKg       = 30.0
	MaxWeightKg       = 150.0
	MinPowerW         = 50.0
	MaxPowerW         = 600.0
	MinFinalStageW    = 100.0
	MaxFinalStageW    = 600.0
	MinFTPW           = 50.0
	MaxFTPW           = 500.0
	MinSecondsInStage = 0.0
)

// AppConfig holds the full runtime configuration of the application.
type AppConfig struct {
	// Protocol selects the field-test estimator.
	Protocol vo2max.Protocol
	// Sex selects the classification table column.
	Sex vo2max.Sex

	// WeightKg is the rider's body weight in kilograms.
	WeightKg float64
	// PowerW is the average power of a 5- or 6-minute effort, in watts.
	PowerW float64
	// FinalStagePowerW is the last completed ramp stage power, in watts.
	FinalStagePowerW float64
	// SecondsIntoFinalStage is the time ridden into the uncompleted ramp
	// stage, in seconds.
	SecondsIntoFinalStage float64
	// FTPW is the Functional Threshold Power, in watts.
	FTPW float64

	// StageIncrementW and StageDurationSec parameterize the ramp protocol.
	StageIncrementW  float64
	StageDurationSec float64

	// OutputFile is the CSV export destination. Empty disables export;
	// "auto" selects the dated default file name.
	OutputFile string

	// Theme names the color theme: brand, light or none.
	Theme string
	// Quiet suppresses everything but the relative VO2max value.
	Quiet bool
	// Verbose enables additional explanatory output.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI launches the interactive form instead of a one-shot calculation.
	TUI bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on this
	// address for the lifetime of the TUI session.
	MetricsAddr string
}

// RampOptions returns the configured ramp protocol parameters.
func (c AppConfig) RampOptions() vo2max.RampOptions {
	return vo2max.RampOptions{
		StageIncrementW:  c.StageIncrementW,
		StageDurationSec: c.StageDurationSec,
	}
}

// defaults returns the configuration used when neither flags nor environment
// variables override a value. The numeric defaults match the interactive
// form's initial values.
func defaults() AppConfig {
	return AppConfig{
		Protocol:              vo2max.ProtocolFiveMinute,
		Sex:                   vo2max.Male,
		WeightKg:              70,
		PowerW:                300,
		FinalStagePowerW:      325,
		SecondsIntoFinalStage: 30,
		FTPW:                  250,
		StageIncrementW:       vo2max.DefaultStageIncrementW,
		StageDurationSec:      vo2max.DefaultStageDurationSec,
		Theme:                 "brand",
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags that were not set, and validates
// the result. usage output goes to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := defaults()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var protocolName, sexName string
	fs.StringVar(&protocolName, "protocol", string(cfg.Protocol), "test protocol: 5min, 6min, ramp or ftp")
	fs.StringVar(&protocolName, "p", string(cfg.Protocol), "shorthand for -protocol")
	fs.StringVar(&sexName, "sex", string(cfg.Sex), "classification table column: male or female")
	fs.Float64Var(&cfg.WeightKg, "weight", cfg.WeightKg, "body weight in kg (30-150)")
	fs.Float64Var(&cfg.WeightKg, "w", cfg.WeightKg, "shorthand for -weight")
	fs.Float64Var(&cfg.PowerW, "power", cfg.PowerW, "average power of the 5- or 6-minute effort in W (50-600)")
	fs.Float64Var(&cfg.FinalStagePowerW, "final-stage", cfg.FinalStagePowerW, "last completed ramp stage power in W (100-600)")
	fs.Float64Var(&cfg.SecondsIntoFinalStage, "seconds", cfg.SecondsIntoFinalStage, "seconds ridden into the final ramp stage")
	fs.Float64Var(&cfg.FTPW, "ftp", cfg.FTPW, "Functional Threshold Power in W (50-500)")
	fs.Float64Var(&cfg.StageIncrementW, "stage-increment", cfg.StageIncrementW, "ramp stage increment in W")
	fs.Float64Var(&cfg.StageDurationSec, "stage-duration", cfg.StageDurationSec, "ramp stage duration in seconds")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "CSV export path; \"auto\" picks vo2max_results_<date>.csv")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "shorthand for -output")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the relative VO2max value")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "show protocol notes alongside the result")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: brand, light or none")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI colors")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive form")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address during TUI sessions (empty: disabled)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs, &protocolName, &sexName)

	protocol, err := vo2max.ParseProtocol(protocolName)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Protocol = protocol

	sex, err := vo2max.ParseSex(sexName)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Sex = sex

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks that all inputs relevant to the selected protocol lie
// within the documented form ranges.
func (c AppConfig) Validate() error {
	if c.WeightKg < MinWeightKg || c.WeightKg > MaxWeightKg {
		return apperrors.NewConfigError("weight %g kg out of range [%g, %g]", c.WeightKg, MinWeightKg, MaxWeightKg)
	}

	switch c.Protocol {
	case vo2max.ProtocolFiveMinute, vo2max.ProtocolSixMinute:
		if c.PowerW < MinPowerW || c.PowerW > MaxPowerW {
			return apperrors.NewConfigError("power %g W out of range [%g, %g]", c.PowerW, MinPowerW, MaxPowerW)
		}
	case vo2max.ProtocolRamp:
		if c.StageIncrementW <= 0 {
			return apperrors.NewConfigError("stage increment must be positive, got %g", c.StageIncrementW)
		}
		if c.StageDurationSec <= 0 {
			return apperrors.NewConfigError("stage duration must be positive, got %g", c.StageDurationSec)
		}
		if c.FinalStagePowerW < MinFinalStageW || c.FinalStagePowerW > MaxFinalStageW {
			return apperrors.NewConfigError("final stage power %g W out of range [%g, %g]", c.FinalStagePowerW, MinFinalStageW, MaxFinalStageW)
		}
		if c.SecondsIntoFinalStage < MinSecondsInStage || c.SecondsIntoFinalStage > c.StageDurationSec {
			return apperrors.NewConfigError("seconds into final stage %g out of range [0, %g]", c.SecondsIntoFinalStage, c.StageDurationSec)
		}
	case vo2max.ProtocolFTP:
		if c.FTPW < MinFTPW || c.FTPW > MaxFTPW {
			return apperrors.NewConfigError("FTP %g W out of range [%g, %g]", c.FTPW, MinFTPW, MaxFTPW)
		}
	default:
		return apperrors.NewConfigError("unknown protocol %q", c.Protocol)
	}

	switch c.Theme {
	case "", "brand", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (valid: brand, light, none)", c.Theme)
	}

	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	return nil
}

// Summary returns a short human-readable description of the effective inputs
// for the selected protocol, used in the execution banner.
func (c AppConfig) Summary() string {
	switch c.Protocol {
	case vo2max.ProtocolRamp:
		return fmt.Sprintf("%s, %.1f kg, final stage %.0f W + %.0f s (%.0f W / %.0f s stages)",
			c.Protocol.Label(), c.WeightKg, c.FinalStagePowerW, c.SecondsIntoFinalStage, c.StageIncrementW, c.StageDurationSec)
	case vo2max.ProtocolFTP:
		return fmt.Sprintf("%s, %.1f kg, FTP %.0f W", c.Protocol.Label(), c.WeightKg, c.FTPW)
	default:
		return fmt.Sprintf("%s, %.1f kg, %.0f W average", c.Protocol.Label(), c.WeightKg, c.PowerW)
	}
}
