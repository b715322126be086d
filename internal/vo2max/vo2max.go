package vo2max

import (
	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
)

// Result holds the outputs of a single VO2max estimation. All four fields are
// derived from the inputs; VO2maxAbsolute always equals VO2maxRelative
// multiplied by body weight, by construction.
type Result struct {
	// PowerAtVO2max is the power output associated with VO2max, in watts.
	PowerAtVO2max float64
	// PowerToWeight is PowerAtVO2max normalized by body weight, in W/kg.
	PowerToWeight float64
	// VO2maxAbsolute is the absolute oxygen uptake, in ml/min.
	VO2maxAbsolute float64
	// VO2maxRelative is the weight-normalized oxygen uptake, in ml/min/kg.
	VO2maxRelative float64
}

// RampOptions parameterizes the incremental ramp protocol. The stage duration
// is kept explicit because published variants of the Kuipers interpolation
// disagree on the divisor; this implementation uses the stage duration itself
// (60 s for the standard 25 W/min protocol).
type RampOptions struct {
	// StageIncrementW is the power increase between stages, in watts.
	StageIncrementW float64
	// StageDurationSec is the duration of one complete stage, in seconds.
	StageDurationSec float64
}

// DefaultRampOptions returns the standard 25 W / 60 s ramp protocol.
func DefaultRampOptions() RampOptions {
	return RampOptions{
		StageIncrementW:  DefaultStageIncrementW,
		StageDurationSec: DefaultStageDurationSec,
	}
}

// FromFiveMinuteTest estimates VO2max from the average power of a 5-minute
// maximal effort using the Sitko power-to-weight regression.
// weightKg must be positive and avgPowerW must be positive.
func FromFiveMinuteTest(weightKg, avgPowerW float64) (Result, error) {
	if err := checkWeight(weightKg); err != nil {
		return Result{}, err
	}
	if avgPowerW <= 0 {
		return Result{}, apperrors.NewInvalidInput("avgPowerW", "average power must be positive, got %g", avgPowerW)
	}
	return fromSitkoPower(weightKg, avgPowerW), nil
}

// FromSixMinuteTest estimates VO2max from the average power of a 6-minute
// maximal effort using the regression VO2max = 10.8 * W / kg + 7.
// weightKg must be positive and avgPowerW must be positive.
func FromSixMinuteTest(weightKg, avgPowerW float64) (Result, error) {
	if err := checkWeight(weightKg); err != nil {
		return Result{}, err
	}
	if avgPowerW <= 0 {
		return Result{}, apperrors.NewInvalidInput("avgPowerW", "average power must be positive, got %g", avgPowerW)
	}
	relative := avgPowerW*SixMinuteSlope/weightKg + SixMinuteIntercept
	return Result{
		PowerAtVO2max:  avgPowerW,
		PowerToWeight:  avgPowerW / weightKg,
		VO2maxAbsolute: relative * weightKg,
		VO2maxRelative: relative,
	}, nil
}

// FromRampTest estimates VO2max from an incremental ramp test. The final
// completed stage power and the seconds ridden into the final (uncompleted)
// stage determine Maximal Aerobic Power via the Kuipers interpolation:
//
//	MAP = (final - increment) + (seconds / stageDuration) * increment
//
// finalStagePowerW must exceed one stage increment, otherwise the implied
// next-to-last stage is non-physical. secondsIntoFinalStage must lie in
// [0, stageDuration].
func FromRampTest(weightKg, finalStagePowerW, secondsIntoFinalStage float64, opts RampOptions) (Result, error) {
	if err := checkWeight(weightKg); err != nil {
		return Result{}, err
	}
	if opts.StageIncrementW <= 0 {
		return Result{}, apperrors.NewInvalidInput("stageIncrementW", "stage increment must be positive, got %g", opts.StageIncrementW)
	}
	if opts.StageDurationSec <= 0 {
		return Result{}, apperrors.NewInvalidInput("stageDurationSec", "stage duration must be positive, got %g", opts.StageDurationSec)
	}
	if finalStagePowerW <= opts.StageIncrementW {
		return Result{}, apperrors.NewInvalidInput("finalStagePowerW",
			"final stage power %g W must exceed one stage increment (%g W)", finalStagePowerW, opts.StageIncrementW)
	}
	if secondsIntoFinalStage < 0 || secondsIntoFinalStage > opts.StageDurationSec {
		return Result{}, apperrors.NewInvalidInput("secondsIntoFinalStage",
			"seconds into final stage must be in [0, %g], got %g", opts.StageDurationSec, secondsIntoFinalStage)
	}

	nextToLast := finalStagePowerW - opts.StageIncrementW
	mapW := nextToLast + secondsIntoFinalStage/opts.StageDurationSec*opts.StageIncrementW

	absolute := (KuipersSlope*mapW + KuipersIntercept) * 1000
	return Result{
		PowerAtVO2max:  mapW,
		PowerToWeight:  mapW / weightKg,
		VO2maxAbsolute: absolute,
		VO2maxRelative: absolute / weightKg,
	}, nil
}

// FromFTP estimates VO2max from Functional Threshold Power. Power at VO2max
// is taken as 117% of FTP, then converted with the same regression as the
// 5-minute test. weightKg must be positive and ftpW must be positive.
func FromFTP(weightKg, ftpW float64) (Result, error) {
	if err := checkWeight(weightKg); err != nil {
		return Result{}, err
	}
	if ftpW <= 0 {
		return Result{}, apperrors.NewInvalidInput("ftpW", "FTP must be positive, got %g", ftpW)
	}
	return fromSitkoPower(weightKg, ftpW*FTPToVO2maxPowerFactor), nil
}

// fromSitkoPower converts a power at VO2max into a full Result using the
// Sitko power-to-weight regression. Preconditions are the caller's job.
func fromSitkoPower(weightKg, powerW float64) Result {
	ratio := powerW / weightKg
	relative := SitkoIntercept + SitkoSlope*ratio
	return Result{
		PowerAtVO2max:  powerW,
		PowerToWeight:  ratio,
		VO2maxAbsolute: relative * weightKg,
		VO2maxRelative: relative,
	}
}

func checkWeight(weightKg float64) error {
	if weightKg <= 0 {
		return apperrors.NewInvalidInput("weightKg", "body weight must be positive, got %g", weightKg)
	}
	return nil
}
