package format

import (
	"testing"
	"time"
)

func TestResultFieldFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"power rounds to integer watts", Power(292.5), "292 W"},
		{"power integer", Power(300), "300 W"},
		{"power-to-weight two decimals", PowerToWeight(4.2857), "4.29 W/kg"},
		{"vo2 absolute integer", VO2Absolute(3822.99), "3823 ml/min"},
		{"vo2 relative one decimal", VO2Relative(54.614), "54.6 ml/min/kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestExecutionDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := ExecutionDuration(tt.d); got != tt.want {
			t.Errorf("ExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestBandRange(t *testing.T) {
	if got := BandRange(0, 35, true, false); got != "<35" {
		t.Errorf("open-low band = %q, want <35", got)
	}
	if got := BandRange(65, 0, false, true); got != "≥65" {
		t.Errorf("open-high band = %q, want ≥65", got)
	}
	if got := BandRange(35, 45, false, false); got != "35–45" {
		t.Errorf("bounded band = %q, want 35–45", got)
	}
}
