package llm

import "errors"

var (
	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation provider unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the provider returned no usable text.
	ErrEmptyResponse = errors.New("empty generation response")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid generation output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
