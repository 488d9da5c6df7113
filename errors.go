package querydsl

import "errors"

var (
	// ErrTypeMismatch signals a value that cannot be used as a sub-query.
	ErrTypeMismatch = errors.New("type mismatch: value is not a query")
	// ErrNegativeBoostOutOfRange signals a negative_boost outside (0, 1).
	ErrNegativeBoostOutOfRange = errors.New("negative boost out of range")
)
