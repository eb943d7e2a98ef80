package mutate

import "errors"

// ErrValidation indicates malformed or missing required input to a mutator.
// The caller surfaces it as a form-level message; it is never retried.
var ErrValidation = errors.New("validation failed")
