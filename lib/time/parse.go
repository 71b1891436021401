package time

import (
	"regexp"
	"strconv"

	"github.com/CoffeeTableEspresso/time.yasl/internal/calendar"
)

const stampPattern = `^(\d+)-(\d+)-(\d+)T(\d+):(\d+):(\d+)(?:\.(\d*))?`

// layouts are tried in order; the first that matches the whole input wins.
// sign gives the direction in which the written offset is folded into
// the wall-clock fields.
var layouts = []struct {
	name string
	re   *regexp.Regexp
	sign int
}{
	{"utc", regexp.MustCompile(stampPattern + `Z$`), 0},
	{"east", regexp.MustCompile(stampPattern + `\+(\d+):(\d+)$`), -1},
	{"west", regexp.MustCompile(stampPattern + `-(\d+):(\d+)$`), +1},
}

// stamp is a successful match, with the written offset already folded
// into the wall-clock fields.
type stamp struct {
	layout string
	civil  calendar.Civil
	millis int
}

// Parse calls UTC.Parse.
func Parse(s string) (Time, error) { return UTC.Parse(s) }

// Parse parses s in one of three forms:
//
//	YYYY-MM-DDTHH:MM:SS[.fff]Z
//	YYYY-MM-DDTHH:MM:SS[.fff]+HH:MM
//	YYYY-MM-DDTHH:MM:SS[.fff]-HH:MM
//
// Digits beyond the third fractional one are truncated. The input must
// match in full; otherwise Parse returns a *ParseError. The result does
// not depend on the clock's standing offset.
func (c *Clock) Parse(s string) (Time, error) {
	st, ok := scan(s)
	if !ok {
		return Time{}, &ParseError{Input: s}
	}
	ms := c.zone.Local(st.civil) + c.zone.Correction()
	return Time{ms: ms + int64(st.millis)}, nil
}

func scan(s string) (stamp, bool) {
	for _, l := range layouts {
		m := l.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var n [8]int
		for i, j := range []int{1, 2, 3, 4, 5, 6, 8, 9} {
			if j >= len(m) {
				break
			}
			v, err := strconv.Atoi(m[j])
			if err != nil {
				return stamp{}, false
			}
			n[i] = v
		}
		st := stamp{
			layout: l.name,
			civil: calendar.Civil{
				Year:   n[0],
				Month:  n[1],
				Day:    n[2],
				Hour:   n[3] + l.sign*n[6],
				Minute: n[4] + l.sign*n[7],
				Second: n[5],
			},
			millis: fraction(m[7]),
		}
		return st, true
	}
	return stamp{}, false
}

// fraction converts the digits after a decimal point to milliseconds,
// truncating toward zero.
func fraction(digits string) int {
	ms := 0
	for i := 0; i < 3; i++ {
		ms *= 10
		if i < len(digits) {
			ms += int(digits[i] - '0')
		}
	}
	return ms
}
