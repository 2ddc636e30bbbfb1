// Package formatter renders a log call into the message every sink
// receives.
//
// The TextFormatter produces "[LEVEL] ClassName: message". When the
// call carries an error, the error text follows on a new line and the
// stack trace recorded by github.com/pkg/errors follows that, one
// function/file:line pair per frame. Sinks add their own timestamp
// and destination tag in front of this message.
//
// The formatter uses a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
