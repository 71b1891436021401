package time

import "fmt"

// TimeDelta is a signed span of time in milliseconds, with no anchor to
// an instant.
type TimeDelta int64

// Common durations.
const (
	Millisecond TimeDelta = 1
	Second                = 1000 * Millisecond
	Minute                = 60 * Second
	Hour                  = 60 * Minute
)

func FromMilliseconds(n int64) TimeDelta { return TimeDelta(n) }
func FromSeconds(n int64) TimeDelta      { return TimeDelta(n) * Second }
func FromMinutes(n int64) TimeDelta      { return TimeDelta(n) * Minute }
func FromHours(n int64) TimeDelta        { return TimeDelta(n) * Hour }

// Milliseconds returns d as a count of milliseconds.
func (d TimeDelta) Milliseconds() int64 { return int64(d) }

// Neg returns -d.
func (d TimeDelta) Neg() TimeDelta { return -d }

// Add returns d+e.
func (d TimeDelta) Add(e TimeDelta) TimeDelta { return d + e }

// Sub returns e-d: the receiver is subtracted from the argument.
func (d TimeDelta) Sub(e TimeDelta) TimeDelta { return e - d }

// String renders d as timedelta(<sign><seconds>.<milliseconds>), for
// example timedelta(-5.250). The fraction is always three digits.
func (d TimeDelta) String() string {
	sign, abs := "", uint64(d)
	if d < 0 {
		sign, abs = "-", -abs
	}
	return fmt.Sprintf("timedelta(%s%d.%03d)", sign, abs/1000, abs%1000)
}
