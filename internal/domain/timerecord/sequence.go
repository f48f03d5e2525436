package timerecord

// Recorded is the set of kinds already punched on one day.
type Recorded map[Kind]bool

func RecordedFrom(records []TimeRecord) Recorded {
	recorded := make(Recorded, len(records))
	for _, r := range records {
		recorded[r.Kind] = true
	}
	return recorded
}

// CheckPunch reports why kind cannot be punched on a day that already holds recorded.
// CLOCK_IN after CLOCK_OUT and BREAK_START after CLOCK_OUT are accepted.
func CheckPunch(kind Kind, recorded Recorded) error {
	if !kind.IsValid() {
		return ErrInvalidKind
	}
	if recorded[kind] {
		return ErrDuplicateEvent
	}

	switch kind {
	case KindBreakStart, KindClockOut:
		if !recorded[KindClockIn] {
			return ErrMissingClockIn
		}
	case KindBreakEnd:
		if !recorded[KindBreakStart] {
			return ErrMissingBreakStart
		}
	}
	return nil
}

// Allowed returns the kinds CheckPunch would accept, in day order.
func Allowed(recorded Recorded) []Kind {
	allowed := make([]Kind, 0, len(Kinds))
	for _, k := range Kinds {
		if CheckPunch(k, recorded) == nil {
			allowed = append(allowed, k)
		}
	}
	return allowed
}
