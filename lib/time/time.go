package time

import (
	"time"

	"github.com/CoffeeTableEspresso/time.yasl/internal/calendar"
)

// NowFunc is a function that generates the current time. Intentionally
// exported so that it can be overridden, for example by applications
// that require their scripts to be fully deterministic.
var NowFunc = systemNow

// A Clock carries the standing UTC offset used to read wall-clock fields
// as local time. The offset is fixed when the Clock is created.
type Clock struct {
	zone calendar.Zone

	// NowFunc, if set, replaces the package NowFunc for this clock.
	NowFunc func() time.Time
}

// UTC is the clock with a zero standing offset.
var UTC = NewClock(0)

// NewClock returns a clock whose local wall time runs offsetMinutes
// ahead of UTC.
func NewClock(offsetMinutes int) *Clock {
	return &Clock{zone: calendar.FixedZone(offsetMinutes)}
}

// Offset reports the standing offset in minutes east of UTC.
func (c *Clock) Offset() int { return c.zone.Offset() }

func (c *Clock) String() string { return "clock(" + c.zone.String() + ")" }

// Now returns the current instant. Sub-second precision is discarded,
// so the millisecond field is always zero.
func (c *Clock) Now() Time {
	now := c.NowFunc
	if now == nil {
		now = NowFunc
	}
	return Time{ms: now().Unix() * 1000}
}

// Make returns the instant for the given wall-clock fields read in the
// clock's zone. Out-of-range fields are normalized into adjacent units;
// millisecond is added as is, without validation.
func (c *Clock) Make(year, month, day, hour, minute, second, millisecond int) Time {
	ms := c.zone.Local(calendar.Civil{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	})
	return Time{ms: ms + int64(millisecond)}
}

// Now calls UTC.Now.
func Now() Time { return UTC.Now() }

// Make calls UTC.Make.
func Make(year, month, day, hour, minute, second, millisecond int) Time {
	return UTC.Make(year, month, day, hour, minute, second, millisecond)
}

// Time is an instant in whole milliseconds since the Unix epoch, in UTC.
// The zero value is the epoch. Times are values and safe to share.
type Time struct {
	ms int64
}

// UnixMilli returns the Time ms milliseconds after the epoch.
func UnixMilli(ms int64) Time { return Time{ms: ms} }

// UnixMilli returns t as milliseconds since the epoch.
func (t Time) UnixMilli() int64 { return t.ms }

// Unix returns the whole seconds of t, rounded toward negative infinity.
func (t Time) Unix() int64 {
	sec, _ := calendar.SplitMillis(t.ms)
	return sec
}

// Millisecond returns the millisecond within the second, in [0, 999].
func (t Time) Millisecond() int {
	_, ms := calendar.SplitMillis(t.ms)
	return ms
}

// Date returns the UTC year, month and day of t.
func (t Time) Date() (year, month, day int) {
	c := calendar.ToCivilUTC(t.ms)
	return c.Year, c.Month, c.Day
}

// Clock returns the UTC hour, minute and second of t.
func (t Time) Clock() (hour, minute, second int) {
	c := calendar.ToCivilUTC(t.ms)
	return c.Hour, c.Minute, c.Second
}

// isoLayout renders UTC fields followed by the numeric offset, which is
// always +0000.
const isoLayout = "2006-01-02T15:04:05-0700"

// ISOString formats t as YYYY-MM-DDTHH:MM:SS+0000. The millisecond
// field is not rendered.
func (t Time) ISOString() string {
	return time.Unix(t.Unix(), 0).UTC().Format(isoLayout)
}

func (t Time) String() string { return t.ISOString() }

// Sub returns the duration t-u: the difference of the whole seconds
// scaled to milliseconds, plus the difference of the millisecond fields.
func (t Time) Sub(u Time) TimeDelta {
	return TimeDelta((t.Unix()-u.Unix())*1000 + int64(t.Millisecond()-u.Millisecond()))
}

// Compare returns -1, 0 or +1 as t is before, equal to or after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.ms < u.ms:
		return -1
	case t.ms > u.ms:
		return +1
	}
	return 0
}

func (t Time) Equal(u Time) bool  { return t.ms == u.ms }
func (t Time) Before(u Time) bool { return t.ms < u.ms }
func (t Time) After(u Time) bool  { return t.ms > u.ms }
