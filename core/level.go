package core

import "strings"

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Compare returns -1, 0 or 1 depending on whether l ranks below, equal to
// or above other.
func (l Level) Compare(other Level) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// Enabled reports whether a message at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}
