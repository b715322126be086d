package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexbl00m/vo2calc/internal/cli"
	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/export"
	"github.com/alexbl00m/vo2calc/internal/logging"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// runCalculate executes the one-shot CLI mode: compute the estimate for the
// configured protocol, print it, and optionally export it to CSV.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if err := ctx.Err(); err != nil {
		return apperrors.ExitErrorCanceled
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	res, err := a.compute()
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		if apperrors.IsInvalidInput(err) {
			return apperrors.ExitErrorInput
		}
		return apperrors.ExitErrorGeneric
	}

	a.Logger.Debug("calculated",
		logging.String("protocol", string(a.Config.Protocol)),
		logging.Float64("vo2max_relative", res.VO2maxRelative))

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, res)
	} else {
		cli.DisplayResult(out, res, a.Config.Sex, a.Config.Verbose)
	}

	if a.Config.OutputFile != "" {
		target := a.Config.OutputFile
		if target == "auto" {
			target = ""
		}
		path, err := export.WriteFile(target, export.Record{Date: time.Now(), Result: res})
		if err != nil {
			cli.DisplayError(a.ErrWriter, err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplayExportConfirmation(out, path)
		}
	}

	return apperrors.ExitSuccess
}

// compute dispatches to the estimator matching the configured protocol.
func (a *Application) compute() (vo2max.Result, error) {
	cfg := a.Config
	switch cfg.Protocol {
	case vo2max.ProtocolSixMinute:
		return vo2max.FromSixMinuteTest(cfg.WeightKg, cfg.PowerW)
	case vo2max.ProtocolRamp:
		return vo2max.FromRampTest(cfg.WeightKg, cfg.FinalStagePowerW, cfg.SecondsIntoFinalStage, cfg.RampOptions())
	case vo2max.ProtocolFTP:
		return vo2max.FromFTP(cfg.WeightKg, cfg.FTPW)
	default:
		return vo2max.FromFiveMinuteTest(cfg.WeightKg, cfg.PowerW)
	}
}
