package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time via
// -ldflags "-X .../internal/app.Version=...".
var Version = "1.2.0"

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the program name and version.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "vo2calc %s\n", Version)
}
