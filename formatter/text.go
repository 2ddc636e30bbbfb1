package formatter

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/philipp01105/logtargets/core"
	"github.com/philipp01105/logtargets/internal/bufpool"
)

// stackTracer is implemented by errors created or wrapped with github.com/pkg/errors
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// TextFormatter renders "[LEVEL] ClassName: message" and, when the entry
// carries an error, the error text and its stack trace on the lines below.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) string {
	buf := bufpool.Get()
	f.FormatEntry(entry, buf)
	s := buf.String()
	bufpool.Put(buf)
	return s
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Level >= 0 && int(entry.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	buf.WriteString(entry.ClassName)
	buf.WriteString(": ")
	buf.WriteString(entry.Message)

	if entry.Err == nil {
		return
	}

	buf.WriteByte('\n')
	buf.WriteString(entry.Err.Error())

	// %+v on a StackTrace emits one "\nfunction\n\tfile:line" pair per frame
	if st, ok := StackTrace(entry.Err); ok {
		fmt.Fprintf(buf, "%+v", st)
	}
}

// StackTrace returns the first stack trace recorded in err's chain.
func StackTrace(err error) (errors.StackTrace, bool) {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace(), true
	}
	return nil, false
}

// HasStackTrace reports whether err carries a stack trace anywhere in its chain.
func HasStackTrace(err error) bool {
	_, ok := StackTrace(err)
	return ok
}
