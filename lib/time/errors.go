package time

import "errors"

// ErrValue is matched by errors for well-typed input that cannot be
// interpreted, such as an unparseable date string.
var ErrValue = errors.New("value error")

// A ParseError reports that no accepted layout matched the whole input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string { return "unable to parse date" }

// Is reports whether target is ErrValue.
func (e *ParseError) Is(target error) bool { return target == ErrValue }
