package period

import "fmt"

// MalformedIndexString is returned when an index string cannot be parsed
// against the grammar in the index string format (duration index or
// calendar index).
type MalformedIndexString struct {
	Input string
	Cause string
}

func (e *MalformedIndexString) Error() string {
	return fmt.Sprintf("period: malformed index string %q: %s", e.Input, e.Cause)
}

// InvalidDurationString is returned when a duration literal's unit
// character isn't recognized or its numeric part is missing.
type InvalidDurationString struct {
	Input string
}

func (e *InvalidDurationString) Error() string {
	return fmt.Sprintf("period: invalid duration string %q", e.Input)
}
