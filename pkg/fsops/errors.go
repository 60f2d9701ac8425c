package fsops

import "fmt"

// CopyError is the only fatal failure in this package. It is returned when
// a file copy fails even after the permission-fix retry, which leaves the
// deployment incomplete in a way the caller cannot ignore.
type CopyError struct {
	Source string
	Dest   string
	Advice string
	Err    error
}

// Error implements the error interface for CopyError.
func (e *CopyError) Error() string {
	msg := fmt.Sprintf("failed to copy %s to %s: %v", e.Source, e.Dest, e.Err)
	if e.Advice != "" {
		msg += "\n" + e.Advice
	}
	return msg
}

// Unwrap returns the underlying error for CopyError.
func (e *CopyError) Unwrap() error {
	return e.Err
}
