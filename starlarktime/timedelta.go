// Copyright 2020 Honda Research Institute Europe GmbH. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktime

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	ytime "github.com/CoffeeTableEspresso/time.yasl/lib/time"
)

// TimeDelta is a Starlark representation of a signed millisecond span.
type TimeDelta ytime.TimeDelta

var (
	_ starlark.HasAttrs   = TimeDelta(0)
	_ starlark.HasBinary  = TimeDelta(0)
	_ starlark.HasUnary   = TimeDelta(0)
	_ starlark.Comparable = TimeDelta(0)
)

func (d TimeDelta) String() string { return ytime.TimeDelta(d).String() }

// Type returns "timedelta".
func (d TimeDelta) Type() string { return "timedelta" }

func (d TimeDelta) Freeze() {}

func (d TimeDelta) Truth() starlark.Bool { return d != 0 }

func (d TimeDelta) Hash() (uint32, error) {
	return uint32(d) ^ uint32(int64(d)>>32), nil
}

var timedeltaMethods = map[string]builtinMethod{
	"tostr": tostr,
}

func (d TimeDelta) Attr(name string) (starlark.Value, error) {
	if name == "milliseconds" {
		return starlark.MakeInt64(int64(d)), nil
	}
	return builtinAttr(d, name, timedeltaMethods)
}

func (d TimeDelta) AttrNames() []string {
	return append(builtinAttrNames(timedeltaMethods), "milliseconds")
}

func (d TimeDelta) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x, y := d, yV.(TimeDelta)
	cmp := 0
	if x < y {
		cmp = -1
	} else if x > y {
		cmp = 1
	}
	return threeway(op, cmp), nil
}

// Unary implements -timedelta.
func (d TimeDelta) Unary(op syntax.Token) (starlark.Value, error) {
	if op == syntax.MINUS {
		return TimeDelta(ytime.TimeDelta(d).Neg()), nil
	}
	return nil, nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//    timedelta + timedelta = timedelta
//    a - b = timedelta with b's milliseconds minus a's
func (d TimeDelta) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	var fnname string
	switch op {
	case syntax.PLUS:
		fnname = "timedelta.__add"
	case syntax.MINUS:
		fnname = "timedelta.__sub"
	default:
		return nil, nil
	}

	pos := 1
	if side == starlark.Right {
		pos = 0
	}
	y, err := checkTimeDelta(fnname, pos, yV)
	if err != nil {
		return nil, err
	}

	// l and r are the operands as written.
	l, r := ytime.TimeDelta(d), ytime.TimeDelta(y)
	if side == starlark.Right {
		l, r = r, l
	}
	if op == syntax.PLUS {
		return TimeDelta(l.Add(r)), nil
	}
	return TimeDelta(l.Sub(r)), nil
}
