// Copyright 2020 Honda Research Institute Europe GmbH. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktime

import "fmt"

// Kind classifies the errors reported to scripts.
type Kind int

const (
	// TypeError means a value of the wrong kind, or the wrong number of
	// values, was passed.
	TypeError Kind = iota + 1
	// ValueError means a well-typed value could not be interpreted.
	ValueError
)

func (k Kind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case ValueError:
		return "ValueError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error returned by the module's builtins.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func typeError(err error) error {
	return &Error{Kind: TypeError, Msg: err.Error(), Err: err}
}

func typeErrorf(format string, args ...interface{}) error {
	return &Error{Kind: TypeError, Msg: fmt.Sprintf(format, args...)}
}

func valueError(err error) error {
	return &Error{Kind: ValueError, Msg: err.Error(), Err: err}
}
