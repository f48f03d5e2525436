package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNormal       Status = "NORMAL"
	StatusAbsent       Status = "ABSENT"
	StatusInconsistent Status = "INCONSISTENT"
)

// DailyAttendance is the per-day summary derived from a user's time records.
// It can always be rebuilt from the records of that day.
type DailyAttendance struct {
	ID         string
	UserID     string
	Date       time.Time
	TotalHours decimal.Decimal
	Status     Status
	UpdatedAt  time.Time
}
