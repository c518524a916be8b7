package model

import "github.com/m-mizutani/goerr/v2"

// Error kinds shared across layers
var (
	// ErrTagStoreUnavailable marks failures caused by a store that could not be opened
	ErrTagStoreUnavailable = goerr.NewTag("store_unavailable")
	// ErrTagWriteFailed marks a put or delete that the store did not confirm
	ErrTagWriteFailed = goerr.NewTag("write_failed")
	// ErrTagSuggestionFailed marks AI suggestion failures
	ErrTagSuggestionFailed = goerr.NewTag("suggestion_failed")
	// ErrTagValidation marks input rejected before reaching the store
	ErrTagValidation = goerr.NewTag("validation")
	// ErrTagNotFound marks operations on ids that are not in the current state
	ErrTagNotFound = goerr.NewTag("not_found")
)

// Validation errors
var (
	ErrMissingRequired   = goerr.New("required field is missing", goerr.T(ErrTagValidation))
	ErrInvalidEnum       = goerr.New("invalid enumeration value", goerr.T(ErrTagValidation))
	ErrOutOfRange        = goerr.New("value out of range", goerr.T(ErrTagValidation))
	ErrDanglingReference = goerr.New("reference to unknown record", goerr.T(ErrTagValidation))
)

// Context keys for error values
const (
	FieldKey    = "field"
	ValueKey    = "value"
	EntityIDKey = "entity_id"
)

// invalid wraps a validation sentinel and marks it with ErrTagValidation
func invalid(sentinel error, msg string, opts ...goerr.Option) error {
	return goerr.Wrap(sentinel, msg, append(opts, goerr.T(ErrTagValidation))...)
}

// ErrStoreNotOpen is returned by stores used before Open succeeded
var ErrStoreNotOpen = goerr.New("store is not open", goerr.T(ErrTagStoreUnavailable))

// ErrEmptyID is returned when a record without an id reaches a store
var ErrEmptyID = goerr.New("record id is empty")
