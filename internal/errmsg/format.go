// Package errmsg formats failures for the notice line and the terminal.
package errmsg

// Op names the operation that failed, phrased to follow "Failed to".
type Op string

const (
	OpContentLoad   Op = "load content"
	OpContentReload Op = "reload content"
	OpContentWatch  Op = "watch content file"

	OpCopyLink Op = "copy link"
	OpOpenLink Op = "open link"

	OpLogging Op = "open log file"
)

// Format returns "Failed to <op>: <err>", or "" for a nil err.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation quoted after op.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	subject := string(op)
	if context != "" {
		subject += " '" + context + "'"
	}
	return "Failed to " + subject + ": " + err.Error()
}

// Wrap returns err as an error whose message is FormatWith's. It returns nil
// for a nil err.
func Wrap(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, context: context, err: err}
}

type opError struct {
	op      Op
	context string
	err     error
}

func (e *opError) Error() string { return FormatWith(e.op, e.context, e.err) }

func (e *opError) Unwrap() error { return e.err }
