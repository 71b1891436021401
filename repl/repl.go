// Package repl provides a read/eval/print loop for Starlark programs
// that use the time and timedelta modules.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// If an input line can be parsed as an expression,
// the REPL parses and evaluates it and prints its result.
// Otherwise the REPL reads lines until a blank line,
// then tries again to parse the multi-line input as an
// expression. If the input still cannot be parsed as an expression,
// the REPL parses and executes it as a file (a list of statements),
// for side effects.
package repl // import "github.com/CoffeeTableEspresso/time.yasl/repl"

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, eval, print loop against globals, writing
// results to stdout and errors to stderr.
//
// Before evaluating each expression, it sets the Starlark thread local
// variable named "context" to a context.Context that is cancelled by a
// SIGINT (Control-C).
func REPL(thread *starlark.Thread, globals starlark.StringDict) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(os.Stderr, err)
		return
	}
	defer rl.Close()

	e := &evaluator{thread: thread, globals: globals, out: os.Stdout, errOut: os.Stderr}
	for {
		if err := e.rep(readlineSource(rl)); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// readlineSource returns a line reader that switches rl to the
// continuation prompt after the first line of an item.
func readlineSource(rl *readline.Instance) func() ([]byte, error) {
	rl.SetPrompt(">>> ")
	return func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt("... ")
		if err != nil {
			return nil, err
		}
		return []byte(line + "\n"), nil
	}
}

type evaluator struct {
	thread      *starlark.Thread
	globals     starlark.StringDict
	out, errOut io.Writer
}

// rep reads, evaluates, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt or io.EOF)
// only if reading failed. Starlark errors are printed.
func (e *evaluator) rep(readline func() ([]byte, error)) error {
	// Each item gets its own context,
	// which is cancelled by a SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()
	e.thread.SetLocal("context", ctx)

	var readErr error
	f, err := syntax.ParseCompoundStmt("<stdin>", func() ([]byte, error) {
		line, err := readline()
		if err != nil {
			readErr = err
		}
		return line, err
	})
	if err != nil {
		if readErr != nil {
			return readErr
		}
		PrintError(e.errOut, err)
		return nil
	}

	// Treat load bindings as global in the REPL.
	defer func(prev bool) { resolve.LoadBindsGlobally = prev }(resolve.LoadBindsGlobally)
	resolve.LoadBindsGlobally = true

	if expr := soleExpr(f); expr != nil {
		v, err := starlark.EvalExpr(e.thread, expr, e.globals)
		if err != nil {
			PrintError(e.errOut, err)
			return nil
		}
		if v != starlark.None {
			fmt.Fprintln(e.out, v)
		}
	} else if err := starlark.ExecREPLChunk(f, e.thread, e.globals); err != nil {
		PrintError(e.errOut, err)
	}
	return nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints the error to w,
// or its backtrace if it is a Starlark evaluation error.
func PrintError(w io.Writer, err error) {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		fmt.Fprintln(w, evalErr.Backtrace())
	} else {
		fmt.Fprintln(w, err)
	}
}

// MakeLoad returns a simple sequential implementation of module loading.
// Loaded files see predeclared, and each function returned by MakeLoad
// accesses a distinct private cache.
func MakeLoad(predeclared starlark.StringDict) func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	type entry struct {
		globals starlark.StringDict
		err     error
	}

	var cache = make(map[string]*entry)

	var load func(thread *starlark.Thread, module string) (starlark.StringDict, error)
	load = func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
		e, ok := cache[module]
		if e == nil {
			if ok {
				// request for package whose loading is in progress
				return nil, fmt.Errorf("cycle in load graph")
			}

			// Add a placeholder to indicate "load in progress".
			cache[module] = nil

			child := &starlark.Thread{Name: "exec " + module, Load: load}
			globals, err := starlark.ExecFile(child, module, nil, predeclared)
			e = &entry{globals, err}

			cache[module] = e
		}
		return e.globals, e.err
	}
	return load
}
