package config

import (
	"errors"
	"io"
	"testing"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("vo2calc", args, io.Discard)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig with no args returned error: %v", err)
	}

	if cfg.Protocol != vo2max.ProtocolFiveMinute {
		t.Errorf("default protocol = %s, want 5min", cfg.Protocol)
	}
	if cfg.Sex != vo2max.Male {
		t.Errorf("default sex = %s, want male", cfg.Sex)
	}
	if cfg.WeightKg != 70 {
		t.Errorf("default weight = %g, want 70", cfg.WeightKg)
	}
	if cfg.StageIncrementW != vo2max.DefaultStageIncrementW {
		t.Errorf("default stage increment = %g, want %g", cfg.StageIncrementW, vo2max.DefaultStageIncrementW)
	}
	if cfg.StageDurationSec != vo2max.DefaultStageDurationSec {
		t.Errorf("default stage duration = %g, want %g", cfg.StageDurationSec, vo2max.DefaultStageDurationSec)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t, "-protocol", "ramp", "-weight", "65.5", "-final-stage", "350", "-seconds", "45", "-sex", "female", "-o", "out.csv")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Protocol != vo2max.ProtocolRamp {
		t.Errorf("protocol = %s, want ramp", cfg.Protocol)
	}
	if cfg.WeightKg != 65.5 {
		t.Errorf("weight = %g, want 65.5", cfg.WeightKg)
	}
	if cfg.FinalStagePowerW != 350 {
		t.Errorf("final stage = %g, want 350", cfg.FinalStagePowerW)
	}
	if cfg.SecondsIntoFinalStage != 45 {
		t.Errorf("seconds = %g, want 45", cfg.SecondsIntoFinalStage)
	}
	if cfg.Sex != vo2max.Female {
		t.Errorf("sex = %s, want female", cfg.Sex)
	}
	if cfg.OutputFile != "out.csv" {
		t.Errorf("output = %q, want out.csv", cfg.OutputFile)
	}
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"weight below range", []string{"-weight", "20"}},
		{"weight above range", []string{"-weight", "200"}},
		{"power below range", []string{"-power", "10"}},
		{"power above range", []string{"-power", "900"}},
		{"ftp out of range", []string{"-protocol", "ftp", "-ftp", "10"}},
		{"final stage out of range", []string{"-protocol", "ramp", "-final-stage", "50"}},
		{"seconds beyond stage duration", []string{"-protocol", "ramp", "-seconds", "90"}},
		{"unknown protocol", []string{"-protocol", "sprint"}},
		{"unknown sex", []string{"-sex", "unknown"}},
		{"quiet and verbose together", []string{"-quiet", "-verbose"}},
		{"unknown theme", []string{"-theme", "solarized"}},
		{"unexpected positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfig_Theme(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Theme != "brand" {
		t.Errorf("default theme = %q, want brand", cfg.Theme)
	}

	cfg, err = parse(t, "-theme", "light")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.Theme)
	}

	t.Run("env override", func(t *testing.T) {
		t.Setenv("VO2CALC_THEME", "none")
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.Theme != "none" {
			t.Errorf("theme = %q, want none", cfg.Theme)
		}
	})
}

func TestParseConfig_CustomStageDurationWidensSecondsRange(t *testing.T) {
	cfg, err := parse(t, "-protocol", "ramp", "-stage-duration", "120", "-seconds", "90")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.SecondsIntoFinalStage != 90 {
		t.Errorf("seconds = %g, want 90", cfg.SecondsIntoFinalStage)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Run("environment fills in unset flags", func(t *testing.T) {
		t.Setenv("VO2CALC_PROTOCOL", "ftp")
		t.Setenv("VO2CALC_FTP", "280")
		t.Setenv("VO2CALC_SEX", "female")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.Protocol != vo2max.ProtocolFTP {
			t.Errorf("protocol = %s, want ftp", cfg.Protocol)
		}
		if cfg.FTPW != 280 {
			t.Errorf("ftp = %g, want 280", cfg.FTPW)
		}
		if cfg.Sex != vo2max.Female {
			t.Errorf("sex = %s, want female", cfg.Sex)
		}
	})

	t.Run("explicit flags beat environment", func(t *testing.T) {
		t.Setenv("VO2CALC_WEIGHT", "80")

		cfg, err := parse(t, "-weight", "64")
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.WeightKg != 64 {
			t.Errorf("weight = %g, want 64 (flag should win)", cfg.WeightKg)
		}
	})

	t.Run("invalid numeric env value is ignored", func(t *testing.T) {
		t.Setenv("VO2CALC_WEIGHT", "heavy")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.WeightKg != 70 {
			t.Errorf("weight = %g, want default 70", cfg.WeightKg)
		}
	})
}

func TestAppConfig_Summary(t *testing.T) {
	cfg, err := parse(t, "-protocol", "ramp")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Summary(); got == "" {
		t.Error("Summary should not be empty")
	}

	cfg, err = parse(t, "-protocol", "ftp")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Summary(); got == "" {
		t.Error("Summary should not be empty")
	}
}

func TestAppConfig_RampOptions(t *testing.T) {
	cfg, err := parse(t, "-protocol", "ramp", "-stage-increment", "20", "-stage-duration", "90")
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.RampOptions()
	if opts.StageIncrementW != 20 || opts.StageDurationSec != 90 {
		t.Errorf("RampOptions = %+v, want {20 90}", opts)
	}
}
