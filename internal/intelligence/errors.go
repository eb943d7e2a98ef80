package intelligence

import "errors"

// ErrGeneration indicates a provider call failed or returned unparsable
// content. Operations abort with no partial state change; the caller
// surfaces it as a one-shot notification and never retries automatically.
var ErrGeneration = errors.New("content generation failed")
