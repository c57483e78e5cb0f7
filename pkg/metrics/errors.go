package metrics

import "fmt"

// MalformedInputError reports a telemetry file that could not be used:
// unparseable JSON or an entry missing required fields. Index is the
// zero-based position of the first offending entry, or -1 when the file as a
// whole failed to decode.
type MalformedInputError struct {
	File  string
	Index int
	Err   error
}

func (e *MalformedInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed input %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("malformed input %s: entry %d: %v", e.File, e.Index, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
