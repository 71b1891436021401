package repl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"

	"github.com/CoffeeTableEspresso/time.yasl/starlarktime"
)

// feed returns a line source that yields lines and then io.EOF.
func feed(lines ...string) func() ([]byte, error) {
	return func() ([]byte, error) {
		if len(lines) == 0 {
			return nil, io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return []byte(line + "\n"), nil
	}
}

func newEvaluator(t *testing.T) (*evaluator, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	globals, err := starlarktime.LoadModule()
	require.NoError(t, err)
	var out, errOut bytes.Buffer
	return &evaluator{thread: &starlark.Thread{Name: "REPL"}, globals: globals, out: &out, errOut: &errOut}, &out, &errOut
}

func TestEvalExpression(t *testing.T) {
	e, out, errOut := newEvaluator(t)

	require.NoError(t, e.rep(feed(`time.parse("2021-06-01T12:00:00-05:00")`)))

	assert.Equal(t, "2021-06-01T17:00:00+0000\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestStatementsKeepGlobals(t *testing.T) {
	e, out, _ := newEvaluator(t)

	require.NoError(t, e.rep(feed(`d = timedelta.fromseconds(5)`)))
	require.NoError(t, e.rep(feed(`-d`)))

	assert.Equal(t, "timedelta(-5.000)\n", out.String())
}

func TestErrorsArePrinted(t *testing.T) {
	e, out, errOut := newEvaluator(t)

	require.NoError(t, e.rep(feed(`time.parse("yesterday")`)))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "ValueError: unable to parse date")
}

func TestEOF(t *testing.T) {
	e, _, _ := newEvaluator(t)

	assert.Equal(t, io.EOF, e.rep(feed()))
}

func TestMakeLoad(t *testing.T) {
	predeclared, err := starlarktime.LoadModule()
	require.NoError(t, err)

	lib := filepath.Join(t.TempDir(), "lib.star")
	require.NoError(t, os.WriteFile(lib, []byte("hour = timedelta.fromhours(1)\n"), 0o644))

	thread := &starlark.Thread{Load: MakeLoad(predeclared)}
	globals, err := starlark.ExecFile(thread, "main.star", `load("`+filepath.ToSlash(lib)+`", "hour")
ms = hour.milliseconds
`, predeclared)

	require.NoError(t, err)
	assert.Equal(t, "3600000", globals["ms"].String())
}
