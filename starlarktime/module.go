// Copyright 2020 Honda Research Institute Europe GmbH. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarktime exposes millisecond time values to Starlark.
package starlarktime

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.uber.org/zap"

	ytime "github.com/CoffeeTableEspresso/time.yasl/lib/time"
)

// Module time is a Starlark module of instant-related functions.
//
//   time = module(
//      now,
//      parse,
//      time,
//   )
//
// def now():
//   Returns the current instant. The clock is read with one-second
//   resolution, so the millisecond field is zero.
//
// def parse(string):
//   Parses YYYY-MM-DDTHH:MM:SS[.fff] followed by Z, +HH:MM or -HH:MM.
//   Fails with "ValueError: unable to parse date" unless the whole
//   string matches.
//
// def time(year, month, day, hour, minute, second, millisecond):
//   Builds an instant from wall-clock fields read in the standing UTC
//   offset of the clock the module was created with.
//
// Module timedelta holds the duration constructors:
//
//   timedelta = module(
//      frommilliseconds,
//      fromseconds,
//      fromminutes,
//      fromhours,
//   )
//
// Module and TimedeltaModule are bound to a clock with a zero standing
// offset. Use New for another clock.
var Module, TimedeltaModule = New(ytime.UTC)

// LoadModule returns the time and timedelta modules.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		Module.Name:          Module,
		TimedeltaModule.Name: TimedeltaModule,
	}, nil
}

// New returns the time and timedelta modules bound to clock.
func New(clock *ytime.Clock) (timeModule, timedeltaModule *starlarkstruct.Module) {
	b := &binding{clock: clock}
	timeModule = &starlarkstruct.Module{
		Name: "time",
		Members: starlark.StringDict{
			"now":   starlark.NewBuiltin("time.now", b.now),
			"parse": starlark.NewBuiltin("time.parse", b.parse),
			"time":  starlark.NewBuiltin("time.time", b.newTime),
		},
	}
	timedeltaModule = &starlarkstruct.Module{
		Name: "timedelta",
		Members: starlark.StringDict{
			"frommilliseconds": starlark.NewBuiltin("timedelta.frommilliseconds", deltaFrom(ytime.FromMilliseconds)),
			"fromseconds":      starlark.NewBuiltin("timedelta.fromseconds", deltaFrom(ytime.FromSeconds)),
			"fromminutes":      starlark.NewBuiltin("timedelta.fromminutes", deltaFrom(ytime.FromMinutes)),
			"fromhours":        starlark.NewBuiltin("timedelta.fromhours", deltaFrom(ytime.FromHours)),
		},
	}
	return timeModule, timedeltaModule
}

const clockKey = "time.clock"

// SetClock makes the modules use c on thread instead of the clock they
// were created with.
func SetClock(thread *starlark.Thread, c *ytime.Clock) {
	thread.SetLocal(clockKey, c)
}

type binding struct {
	clock *ytime.Clock
}

func (b *binding) clockFor(thread *starlark.Thread) *ytime.Clock {
	if c, ok := thread.Local(clockKey).(*ytime.Clock); ok && c != nil {
		return c
	}
	return b.clock
}

func (b *binding) now(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, typeError(err)
	}
	return Time(b.clockFor(thread).Now()), nil
}

func (b *binding) parse(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &x); err != nil {
		return nil, typeError(err)
	}
	s, err := checkString(fn.Name(), 0, x)
	if err != nil {
		return nil, err
	}

	t, err := b.clockFor(thread).Parse(s)
	if err != nil {
		Logger().Debug("parse failed", zap.String("input", s), zap.String("thread", thread.Name), zap.Error(err))
		return nil, valueError(err)
	}
	return Time(t), nil
}

var fieldNames = [...]string{"year", "month", "day", "hour", "minute", "second", "millisecond"}

func (b *binding) newTime(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var xs [len(fieldNames)]starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, len(xs),
		&xs[0], &xs[1], &xs[2], &xs[3], &xs[4], &xs[5], &xs[6]); err != nil {
		return nil, typeError(err)
	}

	var f [len(fieldNames)]int
	for i, x := range xs {
		n, err := checkInt(fn.Name(), i, x)
		if err != nil {
			return nil, err
		}
		if int64(int(n)) != n {
			return nil, typeErrorf("%s: %s out of range", fn.Name(), fieldNames[i])
		}
		f[i] = int(n)
	}

	return Time(b.clockFor(thread).Make(f[0], f[1], f[2], f[3], f[4], f[5], f[6])), nil
}

func deltaFrom(unit func(int64) ytime.TimeDelta) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &x); err != nil {
			return nil, typeError(err)
		}
		n, err := checkInt(fn.Name(), 0, x)
		if err != nil {
			return nil, err
		}
		return TimeDelta(unit(n)), nil
	}
}
