// Copyright 2020 Honda Research Institute Europe GmbH. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktime

import (
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func checkString(fnname string, pos int, v starlark.Value) (string, error) {
	s, ok := v.(starlark.String)
	if !ok {
		return "", wrongType(fnname, pos, "str", v)
	}
	return string(s), nil
}

func checkInt(fnname string, pos int, v starlark.Value) (int64, error) {
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, wrongType(fnname, pos, "int", v)
	}
	n, ok := i.Int64()
	if !ok {
		return 0, typeErrorf("%s expected arg in position %d to fit in 64 bits, got %s.", fnname, pos, i)
	}
	return n, nil
}

func checkTime(fnname string, pos int, v starlark.Value) (Time, error) {
	t, ok := v.(Time)
	if !ok {
		return Time{}, wrongType(fnname, pos, "time", v)
	}
	return t, nil
}

func checkTimeDelta(fnname string, pos int, v starlark.Value) (TimeDelta, error) {
	d, ok := v.(TimeDelta)
	if !ok {
		return 0, wrongType(fnname, pos, "timedelta", v)
	}
	return d, nil
}

func wrongType(fnname string, pos int, want string, got starlark.Value) error {
	return typeErrorf("%s expected arg in position %d to be of type %s, got arg of type %s.", fnname, pos, want, got.Type())
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(recv.Type()+"."+name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tostr is the tostr method of both value types.
func tostr(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, typeError(err)
	}
	return starlark.String(recv.String()), nil
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
