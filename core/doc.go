// Package core defines the shared types used across the dispatcher.
//
// It provides the Level type, a total order DEBUG < INFO < WARN < ERROR
// used both as the severity of a log call and as the per-target
// threshold, and the Entry type that carries one log call from the
// Logger to the formatter.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once it has been rendered.
// PutEntry zeroes the entry so a recycled value never leaks a previous
// error or message.
package core
