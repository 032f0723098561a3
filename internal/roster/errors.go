package roster

import "fmt"

// ValidationError is a domain rule violation. Its message is safe to return
// to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError names a referenced player, match or substitution that does
// not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Resource, e.ID)
}

// StorageError wraps an infrastructure failure. Callers log it and answer
// with a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "roster: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

var (
	ErrNotSameTeam         = &ValidationError{Msg: "players not on same team"}
	ErrQuotaExceeded       = &ValidationError{Msg: "gender quota exceeded"}
	ErrAlreadyInMatch      = &ValidationError{Msg: "player already in match"}
	ErrNotInMatch          = &ValidationError{Msg: "player does not play in this match"}
	ErrSubstitutedInactive = &ValidationError{Msg: "substituted player is inactive"}
	ErrSubstitutingActive  = &ValidationError{Msg: "substituting player already active"}
	ErrInvalidTime         = &ValidationError{Msg: "substitution time must be HHMMSS"}
)
