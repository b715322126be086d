package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and verifies the end-to-end CLI behavior.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "vo2calc"
	if runtime.GOOS == "windows" {
		binName = "vo2calc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/vo2calc")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build vo2calc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Default Five Minute Protocol",
			args:     []string{"-weight", "70", "-power", "300"},
			wantOut:  "54.6",
			wantCode: 0,
		},
		{
			name:     "Six Minute Protocol",
			args:     []string{"-protocol", "6min", "-weight", "70", "-power", "290"},
			wantOut:  "51.7",
			wantCode: 0,
		},
		{
			name:     "Ramp Protocol",
			args:     []string{"-protocol", "ramp", "-weight", "70", "-final-stage", "325", "-seconds", "30"},
			wantOut:  "312 W",
			wantCode: 0,
		},
		{
			name:     "FTP Protocol",
			args:     []string{"-protocol", "ftp", "-weight", "70", "-ftp", "250"},
			wantOut:  "53.7",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-quiet", "-weight", "70", "-power", "300"},
			wantOut:  "54.6",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "vo2calc",
			wantCode: 0,
		},
		{
			name:     "Weight Out Of Range",
			args:     []string{"-weight", "20", "-power", "300"},
			wantOut:  "weight",
			wantCode: 4,
		},
		{
			name:     "Unknown Protocol",
			args:     []string{"-protocol", "20min"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Unknown Theme",
			args:     []string{"-theme", "solarized"},
			wantOut:  "theme",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("Expected exit code %d, got err %v.\nOutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("Exit code mismatch: got %d, want %d.\nOutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

// TestCLI_E2E_Export verifies the CSV export path end to end.
func TestCLI_E2E_Export(t *testing.T) {
	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "vo2calc")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	build := exec.Command("go", "build", "-o", binPath, "./cmd/vo2calc")
	build.Dir = "../.."
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build vo2calc: %v", err)
	}

	outFile := filepath.Join(tmpDir, "results.csv")
	cmd := exec.Command(binPath, "-weight", "70", "-power", "300", "-output", outFile)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Export file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "VO2max (ml/min/kg)") {
		t.Errorf("Export missing header, got:\n%s", content)
	}
	if !strings.Contains(content, "54.6") {
		t.Errorf("Export missing result row, got:\n%s", content)
	}
}
