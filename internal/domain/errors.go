package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation. Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// validationError is a specific validation failure kind. It matches
// ErrValidation under errors.Is, so handlers can branch on the generic
// sentinel while callers that care can match the specific kind.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// The four recoverable failure kinds of the tariff core. All are
// deterministic logic errors: none are retried, none are process-fatal.
var (
	// ErrInvalidPlate means raw text does not canonicalize to LLL-DDD[D].
	// Callers must re-prompt, never truncate further.
	ErrInvalidPlate error = &validationError{"invalid plate format"}

	// ErrInvalidTimeWindow means a night-window bound is not a valid HH:MM.
	// A configuration update carrying one must be rejected whole.
	ErrInvalidTimeWindow error = &validationError{"invalid time window"}

	// ErrInvalidDuration means an exit timestamp precedes its entry
	// timestamp. This signals a session-store consistency bug and is never
	// billed as zero.
	ErrInvalidDuration error = &validationError{"invalid duration"}

	// ErrSessionNotClosed means invoice construction was attempted on a
	// session that has not been closed.
	ErrSessionNotClosed error = &validationError{"session not closed"}
)
