package timerecord

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindClockIn    Kind = "CLOCK_IN"
	KindBreakStart Kind = "BREAK_START"
	KindBreakEnd   Kind = "BREAK_END"
	KindClockOut   Kind = "CLOCK_OUT"
)

// Kinds lists every punch kind in the order they happen during a work day.
var Kinds = []Kind{KindClockIn, KindBreakStart, KindBreakEnd, KindClockOut}

func (k Kind) IsValid() bool {
	switch k {
	case KindClockIn, KindBreakStart, KindBreakEnd, KindClockOut:
		return true
	}
	return false
}

// Label returns the lower-case human form, e.g. "break start".
func (k Kind) Label() string {
	return strings.ToLower(strings.ReplaceAll(string(k), "_", " "))
}

// TimeOfDay is the wall-clock offset from midnight, stored with microsecond precision.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// TimeOfDayOf extracts the wall-clock time of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
	return TimeOfDay(d.Truncate(time.Microsecond))
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

// HHMM formats the time for display, dropping seconds.
func (t TimeOfDay) HHMM() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// DateOf returns the calendar date of t as midnight UTC, the shape DATE columns scan into.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type TimeRecord struct {
	ID        string
	UserID    string
	Date      time.Time
	Time      TimeOfDay
	Kind      Kind
	CreatedAt time.Time
}

// UserDate identifies one subject's work day.
type UserDate struct {
	UserID string
	Date   time.Time
}
