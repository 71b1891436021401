// Copyright 2020 Honda Research Institute Europe GmbH. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktime

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	ytime "github.com/CoffeeTableEspresso/time.yasl/lib/time"
)

// Time is a Starlark representation of an instant.
type Time ytime.Time

var (
	_ starlark.HasAttrs   = Time{}
	_ starlark.HasBinary  = Time{}
	_ starlark.Comparable = Time{}
)

// String implements the Stringer interface.
func (t Time) String() string { return ytime.Time(t).ISOString() }

// Type returns "time".
func (t Time) Type() string { return "time" }

// Freeze is a no-op: Time is immutable.
func (t Time) Freeze() {}

// Truth reports true for every instant.
func (t Time) Truth() starlark.Bool { return starlark.True }

func (t Time) Hash() (uint32, error) {
	ms := ytime.Time(t).UnixMilli()
	return uint32(ms) ^ uint32(ms>>32), nil
}

var timeMethods = map[string]builtinMethod{
	"tostr": tostr,
}

func (t Time) Attr(name string) (starlark.Value, error) {
	x := ytime.Time(t)
	year, month, day := x.Date()
	hour, minute, second := x.Clock()
	switch name {
	case "year":
		return starlark.MakeInt(year), nil
	case "month":
		return starlark.MakeInt(month), nil
	case "day":
		return starlark.MakeInt(day), nil
	case "hour":
		return starlark.MakeInt(hour), nil
	case "minute":
		return starlark.MakeInt(minute), nil
	case "second":
		return starlark.MakeInt(second), nil
	case "millisecond":
		return starlark.MakeInt(x.Millisecond()), nil
	case "unix_milli":
		return starlark.MakeInt64(x.UnixMilli()), nil
	}
	return builtinAttr(t, name, timeMethods)
}

func (t Time) AttrNames() []string {
	return append(builtinAttrNames(timeMethods),
		"year",
		"month",
		"day",
		"hour",
		"minute",
		"second",
		"millisecond",
		"unix_milli",
	)
}

func (t Time) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	return threeway(op, ytime.Time(t).Compare(ytime.Time(yV.(Time)))), nil
}

// Binary implements time - time = timedelta. Every other operator is
// left to Starlark to reject.
func (t Time) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	if op != syntax.MINUS {
		return nil, nil
	}
	pos := 1
	if side == starlark.Right {
		pos = 0
	}
	y, err := checkTime("time.__sub", pos, yV)
	if err != nil {
		return nil, err
	}
	if side == starlark.Left {
		return TimeDelta(ytime.Time(t).Sub(ytime.Time(y))), nil
	}
	return TimeDelta(ytime.Time(y).Sub(ytime.Time(t))), nil
}
