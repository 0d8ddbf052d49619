package summarizer

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the caller supplied nothing usable:
// blank text or an empty file set.
var ErrEmptyInput = errors.New("input cannot be empty")

// ErrQuotaExhausted is returned when the daily model-call ceiling has been
// reached. The request is not retried.
var ErrQuotaExhausted = errors.New("daily summarization quota exhausted")

// ModelInvocationError wraps every failure of the generative-model
// exchange: transport errors, provider-side errors, and responses that
// violate the requested schema. Provider-specific error shapes never
// cross this package's boundary.
type ModelInvocationError struct {
	Err error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("failed to process the content with the API: %v", e.Err)
}

func (e *ModelInvocationError) Unwrap() error { return e.Err }
