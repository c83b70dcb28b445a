package llm

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrRemoteCall is the base error for any failure of the outbound call.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrAuth indicates a missing or rejected credential.
	ErrAuth = fmt.Errorf("%w: authentication", ErrRemoteCall)

	// ErrInvalidResponse indicates the service returned an unusable response.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrRemoteCall)
)

// RemoteError tags the underlying fault with one of the sentinels above.
// Its message is the fault's own description, unchanged.
type RemoteError struct {
	Kind error
	Err  error
}

func (e *RemoteError) Error() string { return e.Err.Error() }

func (e *RemoteError) Unwrap() []error { return []error{e.Kind, e.Err} }
