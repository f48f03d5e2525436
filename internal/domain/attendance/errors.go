package attendance

import "errors"

var (
	ErrDailyAttendanceNotFound = errors.New("daily attendance not found")
	ErrInvalidRebuildRange     = errors.New("rebuild range start must not be after its end")
)
