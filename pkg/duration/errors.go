package duration

import (
	"errors"
	"fmt"
)

// Kind classifies a duration error.
type Kind uint8

const (
	// KindFormat is syntactically unrecognized text.
	KindFormat Kind = iota + 1

	// KindType is an input of the wrong Go type.
	KindType

	// KindValue is an input of the right type with an invalid value
	// (nil, NaN, blank string).
	KindValue

	// KindOverflow is a magnitude that does not fit in int64 seconds.
	KindOverflow
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "FORMAT"
	case KindType:
		return "TYPE"
	case KindValue:
		return "VALUE"
	case KindOverflow:
		return "OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// Duration errors. Every *Error matches ErrDuration and the sentinel of its
// kind with errors.Is.
var (
	ErrDuration      = errors.New("duration error")
	ErrInvalidFormat = errors.New("invalid duration format")
	ErrInvalidType   = errors.New("invalid duration type")
	ErrInvalidValue  = errors.New("invalid duration value")
	ErrOverflow      = errors.New("duration overflow")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrInvalidFormat
	case KindType:
		return ErrInvalidType
	case KindValue:
		return ErrInvalidValue
	case KindOverflow:
		return ErrOverflow
	default:
		return nil
	}
}

// Error is returned by every failing parse or format call.
type Error struct {
	Kind Kind

	// Input is the value passed by the caller.
	Input any

	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is ErrDuration or the sentinel of e.Kind.
func (e *Error) Is(target error) bool {
	if target == ErrDuration {
		return true
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, input any, format string, args ...any) *Error {
	return &Error{Kind: kind, Input: input, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a duration error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
