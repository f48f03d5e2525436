package timerecord

import "errors"

// Punch rejections. All of them are user-correctable.
var (
	ErrInvalidKind       = errors.New("invalid time record type")
	ErrDuplicateEvent    = errors.New("time record of this type already registered today")
	ErrMissingClockIn    = errors.New("clock in must be registered first")
	ErrMissingBreakStart = errors.New("break start must be registered before break end")
)
