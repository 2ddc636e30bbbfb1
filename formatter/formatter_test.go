package formatter

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/philipp01105/logtargets/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter()

	entry := &core.Entry{
		Level:     core.InfoLevel,
		ClassName: "Service",
		Message:   "ready",
	}

	if got, want := f.Format(entry), "[INFO] Service: ready"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_Levels(t *testing.T) {
	f := NewTextFormatter()

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.DebugLevel, "[DEBUG] c: m"},
		{core.InfoLevel, "[INFO] c: m"},
		{core.WarnLevel, "[WARN] c: m"},
		{core.ErrorLevel, "[ERROR] c: m"},
		{core.Level(9), "[UNKNOWN] c: m"},
	}

	for _, tt := range tests {
		got := f.Format(&core.Entry{Level: tt.level, ClassName: "c", Message: "m"})
		if got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestTextFormatter_PlainError(t *testing.T) {
	f := NewTextFormatter()

	entry := &core.Entry{
		Level:     core.ErrorLevel,
		ClassName: "testClass",
		Message:   "This is a new log message",
		Err:       stderrors.New("something went wrong"),
	}

	want := "[ERROR] testClass: This is a new log message\nsomething went wrong"
	if got := f.Format(entry); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_ErrorWithStack(t *testing.T) {
	f := NewTextFormatter()

	entry := &core.Entry{
		Level:     core.ErrorLevel,
		ClassName: "testClass",
		Message:   "This is a new log message",
		Err:       errors.New("something went wrong"),
	}

	output := f.Format(entry)
	lines := strings.Split(output, "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected message, error and trace lines, got: %q", output)
	}
	if lines[0] != "[ERROR] testClass: This is a new log message" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if lines[1] != "something went wrong" {
		t.Errorf("Unexpected error line: %q", lines[1])
	}
	if !strings.Contains(output, "TestTextFormatter_ErrorWithStack") {
		t.Errorf("Expected the creating function in the trace, got: %s", output)
	}
	if !strings.Contains(output, "formatter_test.go:") {
		t.Errorf("Expected file:line in the trace, got: %s", output)
	}
}

func TestStackTrace_Wrapped(t *testing.T) {
	base := errors.New("root cause")
	wrapped := errors.Wrap(base, "context")

	if !HasStackTrace(wrapped) {
		t.Error("Expected wrapped pkg/errors error to carry a stack trace")
	}
	if HasStackTrace(stderrors.New("plain")) {
		t.Error("Expected a stdlib error to carry no stack trace")
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter()
	entry := &core.Entry{
		Level:     core.InfoLevel,
		ClassName: "Service",
		Message:   "test message",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(entry)
	}
}
