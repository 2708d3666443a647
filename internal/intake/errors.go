package intake

import "errors"

var (
	// ErrSynthesis indicates the final generation call failed. No partial
	// artifact is returned; the session state is untouched and the call may
	// be retried.
	ErrSynthesis = errors.New("synthesis failed")
)
