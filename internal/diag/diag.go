// Package diag is a trimmed-down stand-in for kapacitor's diagnostic
// service: processors and stream nodes accept a Diagnostic at
// construction time and call it for the non-fatal anomalies the spec
// calls for (warn-and-null-propagate), never an error.
package diag

import "log"

// Diagnostic is the logging sink a Processor or Node is built with.
type Diagnostic interface {
	// Warn logs a non-fatal anomaly: a negative rate with allowNegative
	// false, a non-numeric value encountered during linear
	// interpolation, and similar warn-and-continue cases.
	Warn(msg string, kv ...interface{})
}

// StdLogDiagnostic is the default Diagnostic, writing through the
// standard library's log package the way wlog's underlying writer does.
type StdLogDiagnostic struct {
	Logger *log.Logger
	Prefix string
}

// NewStdLogDiagnostic returns a StdLogDiagnostic writing to log.Default(),
// tagging every line with prefix (typically the owning node's name).
func NewStdLogDiagnostic(prefix string) *StdLogDiagnostic {
	return &StdLogDiagnostic{Logger: log.Default(), Prefix: prefix}
}

func (d *StdLogDiagnostic) Warn(msg string, kv ...interface{}) {
	args := append([]interface{}{"level", "warn", "source", d.Prefix, "msg", msg}, kv...)
	d.Logger.Println(args...)
}

// Noop discards every diagnostic, useful in tests that don't care about
// log output.
type Noop struct{}

func (Noop) Warn(msg string, kv ...interface{}) {}
