// Package calendar converts between broken-down civil time and epoch
// milliseconds.
//
// Normalization follows the proleptic Gregorian calendar: a field out of
// its usual range rolls into the adjacent larger unit, so an hour of -3
// becomes 21:00 on the previous day. Milliseconds are never part of a
// Civil value; callers keep them alongside.
package calendar

import (
	"fmt"
	"time"
)

// Civil is a wall-clock reading. Month and Day are 1-based and Year is
// the full year, not an offset from 1900.
type Civil struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// ToInstant returns the epoch milliseconds of c read as wall-clock time
// offsetMinutes east of UTC. The offset is subtracted from the minute
// field before normalization, so a zero offset treats c as UTC.
func ToInstant(c Civil, offsetMinutes int) int64 {
	t := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute-offsetMinutes, c.Second, 0, time.UTC)
	return t.Unix() * 1000
}

// ToCivilUTC decomposes ms into UTC fields, discarding the millisecond
// remainder.
func ToCivilUTC(ms int64) Civil {
	sec, _ := SplitMillis(ms)
	t := time.Unix(sec, 0).UTC()
	return Civil{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// SplitMillis splits ms into whole seconds and a remainder in [0, 999],
// rounding the seconds toward negative infinity.
func SplitMillis(ms int64) (sec int64, milli int) {
	sec, rem := ms/1000, ms%1000
	if rem < 0 {
		sec--
		rem += 1000
	}
	return sec, int(rem)
}

// A Zone is a fixed standing UTC offset used in place of the process
// local time zone. It is resolved once and passed around explicitly.
type Zone struct {
	offset int // minutes east of UTC
}

// UTC is the zone with a zero standing offset.
var UTC = Zone{}

// FixedZone returns a zone whose wall clock runs offsetMinutes ahead of UTC.
func FixedZone(offsetMinutes int) Zone {
	return Zone{offset: offsetMinutes}
}

// Offset reports the standing offset in minutes east of UTC.
func (z Zone) Offset() int { return z.offset }

// Local converts c read as wall-clock time in z.
func (z Zone) Local(c Civil) int64 {
	return ToInstant(c, z.offset)
}

// Correction is the amount to add to a Local result so that the instant
// has c as its UTC fields. It is the standing offset in milliseconds.
func (z Zone) Correction() int64 {
	return int64(z.offset) * 60 * 1000
}

// String renders the offset as ±HH:MM.
func (z Zone) String() string {
	sign, off := '+', z.offset
	if off < 0 {
		sign, off = '-', -off
	}
	return fmt.Sprintf("%c%02d:%02d", sign, off/60, off%60)
}
