// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The yasltime command interprets a Starlark file with the time and
// timedelta modules predeclared.
// With no arguments and a terminal on stdin, it starts a read-eval-print
// loop (REPL); with a pipe on stdin, it runs the piped program.
package main // import "github.com/CoffeeTableEspresso/time.yasl/cmd/yasltime"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"go.starlark.net/starlark"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CoffeeTableEspresso/time.yasl/internal/config"
	ytime "github.com/CoffeeTableEspresso/time.yasl/lib/time"
	"github.com/CoffeeTableEspresso/time.yasl/repl"
	"github.com/CoffeeTableEspresso/time.yasl/starlarktime"
)

// errReported means the failure was already printed.
var errReported = errors.New("error reported")

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "yasltime: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	isTerminal     func() bool
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "yasltime",
		Usage:     "Run Starlark programs with millisecond time values",
		ArgsUsage: "[file.star]",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "c",
				Usage:   "execute program `prog`",
				Aliases: []string{"exec"},
			},
			&cli.StringFlag{
				Name:  "offset",
				Usage: "standing UTC offset: local, Z or ±HH:MM (overrides YASLTIME_UTC_OFFSET)",
			},
			&cli.BoolFlag{
				Name:  "showenv",
				Usage: "on success, print final global environment",
			},
			&cli.StringFlag{
				Name:  "cpuprofile",
				Usage: "gather Go CPU profile in this file",
			},
			&cli.StringFlag{
				Name:  "memprofile",
				Usage: "gather Go heap profile in this file",
			},
		},
		Action: a.run,
	}
}

func (a *app) run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if off := cmd.String("offset"); off != "" {
		cfg.UTCOffset = off
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	starlarktime.SetLogger(logger)

	// The standing offset is read once, here.
	offset, err := cfg.OffsetMinutes(time.Now)
	if err != nil {
		return err
	}
	clock := ytime.NewClock(offset)
	logger.Debug("clock resolved", zap.Stringer("clock", clock))

	if path := cmd.String("cpuprofile"); path != "" {
		stop, err := startCPUProfile(path)
		if err != nil {
			return err
		}
		defer stop()
	}
	if path := cmd.String("memprofile"); path != "" {
		defer func() {
			if err := writeHeapProfile(path); err != nil {
				logger.Error("heap profile", zap.String("path", path), zap.Error(err))
			}
		}()
	}

	tm, td := starlarktime.New(clock)
	predeclared := starlark.StringDict{
		tm.Name: tm,
		td.Name: td,
	}
	thread := &starlark.Thread{
		Load: repl.MakeLoad(predeclared),
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(a.stdout, msg)
		},
	}

	var globals starlark.StringDict
	prog := cmd.String("c")
	switch {
	case cmd.NArg() == 1 || prog != "":
		var (
			filename string
			src      interface{}
		)
		if prog != "" {
			filename = "cmdline"
			src = prog
		} else {
			filename = cmd.Args().First()
		}
		if globals, err = a.exec(thread, filename, src, predeclared); err != nil {
			return err
		}
	case cmd.NArg() == 0 && !a.isTerminal():
		if globals, err = a.exec(thread, "<stdin>", a.stdin, predeclared); err != nil {
			return err
		}
	case cmd.NArg() == 0:
		fmt.Fprintln(a.stdout, "Welcome to yasltime (Starlark with time and timedelta)")
		thread.Name = "REPL"
		globals = make(starlark.StringDict)
		for name, v := range predeclared {
			globals[name] = v
		}
		repl.REPL(thread, globals)
	default:
		return fmt.Errorf("want at most one Starlark file name, got %d", cmd.NArg())
	}

	if cmd.Bool("showenv") {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(a.stderr, "%s = %s\n", name, globals[name])
			}
		}
	}
	return nil
}

func (a *app) exec(thread *starlark.Thread, filename string, src interface{}, predeclared starlark.StringDict) (starlark.StringDict, error) {
	thread.Name = "exec " + filename
	globals, err := starlark.ExecFile(thread, filename, src, predeclared)
	if err != nil {
		repl.PrintError(a.stderr, err)
		return nil, errReported
	}
	return globals, nil
}

func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.Lookup("heap").WriteTo(f, 0); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
