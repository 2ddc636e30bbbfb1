package logger

import "github.com/philipp01105/logtargets/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
