package domain

import "errors"

// ErrInvalidConfiguration is returned when a disk count or peg role is outside the accepted domain.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrIllegalMove is returned when an attempted move violates the stacking or top-disk-only rule.
var ErrIllegalMove = errors.New("illegal move")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
