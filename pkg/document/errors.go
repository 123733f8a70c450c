package document

import "fmt"

// DecodeError reports a snapshot that could not be turned into documents.
// Index is the offending array element, or -1 when the file itself is malformed.
type DecodeError struct {
	Source string
	Index  int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("failed to decode %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("failed to decode %s element %d: %v", e.Source, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
