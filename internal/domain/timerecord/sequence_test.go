package timerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckPunch(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		recorded Recorded
		wantErr  error
	}{
		{"clock in on empty day", KindClockIn, Recorded{}, nil},
		{"unknown kind", Kind("LUNCH"), Recorded{}, ErrInvalidKind},
		{"lower case kind", Kind("clock_in"), Recorded{}, ErrInvalidKind},
		{"second clock in", KindClockIn, Recorded{KindClockIn: true}, ErrDuplicateEvent},
		{"break start without clock in", KindBreakStart, Recorded{}, ErrMissingClockIn},
		{"clock out without clock in", KindClockOut, Recorded{}, ErrMissingClockIn},
		{"break end without break start", KindBreakEnd, Recorded{KindClockIn: true}, ErrMissingBreakStart},
		{"break start after clock in", KindBreakStart, Recorded{KindClockIn: true}, nil},
		{"break end after break start", KindBreakEnd, Recorded{KindClockIn: true, KindBreakStart: true}, nil},
		{"clock out skipping break", KindClockOut, Recorded{KindClockIn: true}, nil},
		{"duplicate wins over missing precondition", KindBreakEnd, Recorded{KindBreakEnd: true}, ErrDuplicateEvent},
		{"break start after clock out", KindBreakStart, Recorded{KindClockIn: true, KindClockOut: true}, nil},
		{"clock in after clock out", KindClockIn, Recorded{KindClockOut: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPunch(tt.kind, tt.recorded)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []Kind{KindClockIn}, Allowed(Recorded{}))
	assert.Equal(t, []Kind{KindBreakStart, KindClockOut}, Allowed(Recorded{KindClockIn: true}))
	assert.Equal(t, []Kind{KindBreakEnd, KindClockOut},
		Allowed(Recorded{KindClockIn: true, KindBreakStart: true}))
	assert.Empty(t, Allowed(Recorded{
		KindClockIn: true, KindBreakStart: true, KindBreakEnd: true, KindClockOut: true,
	}))
}

func TestRecordedFrom(t *testing.T) {
	recorded := RecordedFrom([]TimeRecord{{Kind: KindClockIn}, {Kind: KindBreakStart}})

	assert.True(t, recorded[KindClockIn])
	assert.True(t, recorded[KindBreakStart])
	assert.False(t, recorded[KindClockOut])
}

func TestPunchRequest_Validate(t *testing.T) {
	assert.NoError(t, (&PunchRequest{Kind: KindBreakEnd}).Validate())
	assert.ErrorIs(t, (&PunchRequest{Kind: ""}).Validate(), ErrInvalidKind)
}

func TestKind_Label(t *testing.T) {
	assert.Equal(t, "clock in", KindClockIn.Label())
	assert.Equal(t, "break start", KindBreakStart.Label())
}

func TestTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2026, time.March, 9, 7, 5, 42, 123456789, loc)

	tod := TimeOfDayOf(at)

	assert.Equal(t, NewTimeOfDay(7, 5, 42)+TimeOfDay(123456*time.Microsecond), tod)
	assert.Equal(t, "07:05", tod.HHMM())
	assert.Equal(t, "17:00", NewTimeOfDay(17, 0, 59).HHMM())
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 22:30 local is already the next day in UTC
	at := time.Date(2026, time.March, 9, 22, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), DateOf(at))
}
