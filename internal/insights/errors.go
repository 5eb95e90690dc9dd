package insights

import "fmt"

// ExtractionError means no usable AI insights could be produced. It is
// the only error type this package returns; the report composer catches
// it and substitutes baseline insights. Err keeps the root cause for
// logging.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("insight extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("insight extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func extractionErr(reason string, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Err: err}
}
