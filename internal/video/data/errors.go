package data

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey provider constructed without a credential
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrTooManyIDs more identifiers than a single lookup accepts
	ErrTooManyIDs = errors.New("too many identifiers for a single lookup")
)

// ProviderError wraps failures of a provider call
type ProviderError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Operation, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Operation, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
