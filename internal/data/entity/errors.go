package entity

import "errors"

// Lookup and validation failures. These are expected control flow and are
// returned before any repository mutation is attempted.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateRecord = errors.New("a record with the same value already exists")
	ErrValidation      = errors.New("validation error")
)

// Domain-rule violations raised by the session aggregate or its service.
var (
	ErrCapacityExceeded = errors.New("maximum tickets exceed room capacity")
	ErrScheduleConflict = errors.New("another session uses the same room and start time")
	ErrSessionClosed    = errors.New("session is closed")
	ErrSeatOutOfRange   = errors.New("seat number out of range")
	ErrSeatTaken        = errors.New("seat is already taken")
	ErrSessionFull      = errors.New("session has no seats left")
)

// ErrInternal masks persistence failures. The underlying cause is logged,
// never returned to the caller.
var ErrInternal = errors.New("an internal server error occurred")
