package vo2max

import (
	"strings"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
)

// Protocol identifies one of the supported field-test protocols.
type Protocol string

// Supported protocols.
const (
	ProtocolFiveMinute Protocol = "5min"
	ProtocolSixMinute  Protocol = "6min"
	ProtocolRamp       Protocol = "ramp"
	ProtocolFTP        Protocol = "ftp"
)

// Protocols returns all supported protocols in presentation order.
func Protocols() []Protocol {
	return []Protocol{ProtocolFiveMinute, ProtocolSixMinute, ProtocolRamp, ProtocolFTP}
}

// Label returns a short human-readable name for the protocol, suitable for
// tab headers and summaries.
func (p Protocol) Label() string {
	switch p {
	case ProtocolFiveMinute:
		return "5-Min Test"
	case ProtocolSixMinute:
		return "6-Min Test"
	case ProtocolRamp:
		return "Ramp Test"
	case ProtocolFTP:
		return "FTP Estimate"
	}
	return string(p)
}

// Description returns a one-line protocol summary for display.
func (p Protocol) Description() string {
	switch p {
	case ProtocolFiveMinute:
		return "5-minute all-out effort; record average power"
	case ProtocolSixMinute:
		return "6-minute all-out effort; record average power"
	case ProtocolRamp:
		return "25 W/min incremental ramp to exhaustion"
	case ProtocolFTP:
		return "Estimate from Functional Threshold Power"
	}
	return string(p)
}

// ParseProtocol converts a user-supplied protocol name into a Protocol.
// Matching is case-insensitive and accepts a few common aliases
// ("5", "five", "6", "six"). Unknown names yield a ConfigError listing the
// valid choices.
func ParseProtocol(name string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "5min", "5", "five", "5-min":
		return ProtocolFiveMinute, nil
	case "6min", "6", "six", "6-min":
		return ProtocolSixMinute, nil
	case "ramp":
		return ProtocolRamp, nil
	case "ftp":
		return ProtocolFTP, nil
	}
	names := make([]string, 0, len(Protocols()))
	for _, p := range Protocols() {
		names = append(names, string(p))
	}
	return "", apperrors.NewConfigError("unknown protocol %q (valid: %s)", name, strings.Join(names, ", "))
}

// ParseSex converts a user-supplied sex name into a Sex. Matching is
// case-insensitive and accepts "m"/"f" shorthands.
func ParseSex(name string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", apperrors.NewConfigError("unknown sex %q (valid: male, female)", name)
}
