package formatter

import (
	"bytes"

	"github.com/philipp01105/logtargets/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders an entry into the message handed to every sink
	Format(entry *core.Entry) string
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}
