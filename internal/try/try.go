// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for folding deferred failures into an
// already returned error.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError wraps a failure from closing an io.Closer.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v, if it is an io.Closer, and folds any close failure
// into the error ref. Meant to be used in a defer with a named return:
//
//	func f(r io.Reader) (err error) {
//		defer try.Close(&err, r)
//		...
//	}
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	werr := error(CloseError{Cause: cerr})
	if *err == nil {
		*err = werr
		return
	}
	*err = errors.Join(*err, werr)
}
