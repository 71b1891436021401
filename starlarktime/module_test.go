package starlarktime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"

	ytime "github.com/CoffeeTableEspresso/time.yasl/lib/time"
)

func exec(t *testing.T, thread *starlark.Thread, src string) starlark.StringDict {
	t.Helper()
	predeclared, err := LoadModule()
	require.NoError(t, err)
	globals, err := starlark.ExecFile(thread, "test.star", src, predeclared)
	require.NoError(t, err)
	return globals
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var e *Error
	require.True(t, errors.As(err, &e), "error %v is not a *starlarktime.Error", err)
	return e.Kind
}

func TestParseBuiltin(t *testing.T) {
	th := &starlark.Thread{}

	res, err := starlark.Call(th, Module.Members["parse"], starlark.Tuple{starlark.String("2021-03-15T10:30:00.500Z")}, nil)
	require.NoError(t, err)
	got, ok := res.(Time)
	require.True(t, ok)
	assert.Equal(t, int64(1615804200500), ytime.Time(got).UnixMilli())
	assert.Equal(t, "2021-03-15T10:30:00+0000", got.String())
}

func TestParseBuiltinValueError(t *testing.T) {
	th := &starlark.Thread{}

	_, err := starlark.Call(th, Module.Members["parse"], starlark.Tuple{starlark.String("2021-01-01T00:00:00Z-garbage")}, nil)
	require.Error(t, err)
	assert.Equal(t, ValueError, kindOf(t, err))
	assert.True(t, errors.Is(err, ytime.ErrValue))
	assert.Contains(t, err.Error(), "ValueError: unable to parse date")
}

func TestTypeErrors(t *testing.T) {
	th := &starlark.Thread{}
	for _, test := range []struct {
		name string
		fn   starlark.Value
		args starlark.Tuple
		msg  string
	}{
		{"parse int", Module.Members["parse"], starlark.Tuple{starlark.MakeInt(1)},
			"TypeError: time.parse expected arg in position 0 to be of type str, got arg of type int."},
		{"parse no args", Module.Members["parse"], nil, ""},
		{"now with args", Module.Members["now"], starlark.Tuple{starlark.None}, ""},
		{"time short", Module.Members["time"], starlark.Tuple{starlark.MakeInt(2021)}, ""},
		{"time string field", Module.Members["time"], starlark.Tuple{
			starlark.MakeInt(2021), starlark.MakeInt(1), starlark.String("1"),
			starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0),
		}, "TypeError: time.time expected arg in position 2 to be of type int, got arg of type string."},
		{"fromseconds float", TimedeltaModule.Members["fromseconds"], starlark.Tuple{starlark.Float(1.5)},
			"TypeError: timedelta.fromseconds expected arg in position 0 to be of type int, got arg of type float."},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := starlark.Call(th, test.fn, test.args, nil)
			require.Error(t, err)
			assert.Equal(t, TypeError, kindOf(t, err))
			if test.msg != "" {
				var e *Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, test.msg, e.Error())
			}
		})
	}
}

func TestPerThreadClock(t *testing.T) {
	th := &starlark.Thread{}
	c := ytime.NewClock(60)
	date := time.Date(2021, 6, 1, 12, 0, 0, 999, time.UTC)
	c.NowFunc = func() time.Time { return date }
	SetClock(th, c)

	res, err := starlark.Call(th, Module.Members["now"], nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01T12:00:00+0000", res.String())

	// time() reads its fields in the thread clock's offset.
	globals := exec(t, th, `t = time.time(2021, 6, 1, 13, 0, 0, 0).tostr()`)
	assert.Equal(t, starlark.String("2021-06-01T12:00:00+0000"), globals["t"])
}

func TestNewBindsClock(t *testing.T) {
	tm, _ := New(ytime.NewClock(-300))
	th := &starlark.Thread{}
	args := starlark.Tuple{
		starlark.MakeInt(2021), starlark.MakeInt(6), starlark.MakeInt(1),
		starlark.MakeInt(7), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0),
	}
	res, err := starlark.Call(th, tm.Members["time"], args, nil)
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01T12:00:00+0000", res.String())
}

func TestScript(t *testing.T) {
	globals := exec(t, &starlark.Thread{}, `
a = time.parse("2021-03-15T10:30:01.000Z")
b = time.parse("2021-03-15T10:30:00.500Z")
diff = (a - b).tostr()
back = (b - a).tostr()
east = time.parse("2021-06-01T12:00:00+05:00")
west = time.parse("2021-06-01T12:00:00-05:00")
hours = (west - east).milliseconds
fields = (east.year, east.month, east.day, east.hour, east.minute, east.second, b.millisecond)
same = (timedelta.fromhours(1) == timedelta.fromminutes(60) and
	timedelta.fromminutes(60) == timedelta.fromseconds(3600) and
	timedelta.fromseconds(3600) == timedelta.frommilliseconds(3600000))
neg = str(-timedelta.fromseconds(5))
total = (timedelta.fromseconds(5) + timedelta.frommilliseconds(250)).tostr()
flipped = (timedelta.fromseconds(5) - timedelta.fromseconds(2)).milliseconds
zero = (east - east).tostr()
ordered = b < a and east < west
made = time.time(2021, 6, 1, 7, 0, 0, 0) == east
`)

	assert.Equal(t, starlark.String("timedelta(0.500)"), globals["diff"])
	assert.Equal(t, starlark.String("timedelta(-0.500)"), globals["back"])
	assert.Equal(t, "36000000", globals["hours"].String())
	assert.Equal(t, "(2021, 6, 1, 7, 0, 0, 500)", globals["fields"].String())
	assert.Equal(t, starlark.True, globals["same"])
	assert.Equal(t, starlark.String("timedelta(-5.000)"), globals["neg"])
	assert.Equal(t, starlark.String("timedelta(5.250)"), globals["total"])
	assert.Equal(t, "-3000", globals["flipped"].String())
	assert.Equal(t, starlark.String("timedelta(0.000)"), globals["zero"])
	assert.Equal(t, starlark.True, globals["ordered"])
	assert.Equal(t, starlark.True, globals["made"])
}

func TestOperatorTypeErrors(t *testing.T) {
	predeclared, err := LoadModule()
	require.NoError(t, err)

	for _, src := range []string{
		`time.now() - 1`,
		`timedelta.fromseconds(1) + time.now()`,
		`1 - timedelta.fromseconds(1)`,
	} {
		_, err := starlark.ExecFile(&starlark.Thread{}, "op.star", "x = "+src, predeclared)
		require.Error(t, err, src)
		assert.Equal(t, TypeError, kindOf(t, err), src)
	}

	_, err = starlark.ExecFile(&starlark.Thread{}, "op.star", "x = time.now() + time.now()", predeclared)
	assert.Error(t, err)
}

func TestAttrNames(t *testing.T) {
	assert.Equal(t,
		[]string{"tostr", "year", "month", "day", "hour", "minute", "second", "millisecond", "unix_milli"},
		Time{}.AttrNames())
	assert.Equal(t, []string{"tostr", "milliseconds"}, TimeDelta(0).AttrNames())

	v, err := TimeDelta(0).Attr("nope")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TypeError", TypeError.String())
	assert.Equal(t, "ValueError", ValueError.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
