package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/logging"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	application, err := New(append([]string{"vo2calc"}, args...), io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New(%v) error: %v", args, err)
	}
	return application
}

func TestNew_Defaults(t *testing.T) {
	application := newTestApp(t)

	if application.Config.Protocol != vo2max.ProtocolFiveMinute {
		t.Errorf("expected default protocol 5min, got %s", application.Config.Protocol)
	}
	if application.Logger == nil {
		t.Error("expected a logger to be set")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New([]string{"vo2calc", "-weight", "20"}, io.Discard)
	if err == nil {
		t.Fatal("expected error for out-of-range weight")
	}
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected a config error, got %T: %v", err, err)
	}
	if !strings.Contains(cfgErr.Message, "weight") {
		t.Errorf("expected the error to name the weight field, got %q", cfgErr.Message)
	}
}

func TestRun_QuietMode(t *testing.T) {
	application := newTestApp(t, "-quiet", "-weight", "70", "-power", "300")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if got := strings.TrimSpace(out.String()); got != "54.6" {
		t.Errorf("expected quiet output %q, got %q", "54.6", got)
	}
}

func TestRun_FullOutput(t *testing.T) {
	application := newTestApp(t, "-no-color", "-weight", "70", "-power", "300")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{"300 W", "4.29 W/kg", "54.6", "Good"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRun_RampProtocol(t *testing.T) {
	application := newTestApp(t, "-no-color", "-quiet",
		"-protocol", "ramp", "-weight", "70", "-final-stage", "325", "-seconds", "30")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}
	// MAP 312.5 W: 0.01141*312.5 + 0.435 = 4.0006 L/min -> 57.2 ml/min/kg
	if got := strings.TrimSpace(out.String()); got != "57.2" {
		t.Errorf("expected %q, got %q", "57.2", got)
	}
}

func TestRun_ExportWritesFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "results.csv")
	application := newTestApp(t, "-no-color", "-weight", "70", "-power", "300", "-output", outFile)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.Contains(string(data), "54.6") {
		t.Errorf("export missing result, got:\n%s", data)
	}
	if !strings.Contains(out.String(), outFile) {
		t.Errorf("expected export confirmation mentioning %q", outFile)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	application := newTestApp(t, "-quiet", "-weight", "70", "-power", "300")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if code := application.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("expected exit %d for canceled context, got %d", apperrors.ExitErrorCanceled, code)
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", func() error { _, err := New([]string{"vo2calc", "-weight", "20"}, io.Discard); return err }(), apperrors.ExitErrorConfig},
		{"unknown protocol", func() error { _, err := New([]string{"vo2calc", "-protocol", "20min"}, io.Discard); return err }(), apperrors.ExitErrorConfig},
		{"plain error", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected a non-nil error from setup")
			}
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-weight", "70"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "vo2calc") {
		t.Errorf("expected version output to mention the program name, got %q", out.String())
	}
}
