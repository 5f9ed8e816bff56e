package argv

import (
	"errors"
	"fmt"
)

// ErrKindMismatch is returned when a typed accessor is called on an
// Argument of a different kind.
var ErrKindMismatch = errors.New("argument kind mismatch")

// Kind identifies which variant an Argument holds.
type Kind int

// Argument kinds. KindNone is only held by the zero Argument; Classify
// never emits it.
const (
	KindNone Kind = iota
	KindParameter
	KindOption
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindOption:
		return "option"
	case KindFlag:
		return "flag"
	case KindNone:
		return "none"
	default:
		panic(fmt.Sprintf("unknown argument kind %d", int(k)))
	}
}

// Option is the payload of an option-kind Argument: a long-form name with
// an optional captured value.
type Option struct {
	Name     string
	Value    string
	Captured bool
}

// Flag is the payload of a flag-kind Argument: a single-character name
// with an optional captured value.
type Flag struct {
	Name     byte
	Value    string
	Captured bool
}

// Argument is one classified command-line token: a bare parameter, a
// long-form option, or a short-form flag. The kind is derived from the
// constructor used and cannot diverge from the payload.
type Argument struct {
	kind     Kind
	name     string // parameter text, option name, or flag char as a 1-byte string
	value    string
	captured bool
}

// NewParameter returns a parameter Argument holding text unchanged.
func NewParameter(text string) Argument {
	return Argument{kind: KindParameter, name: text}
}

// NewOption returns an option Argument with no captured value.
func NewOption(name string) Argument {
	return Argument{kind: KindOption, name: name}
}

// NewOptionCapture returns an option Argument with a captured value.
func NewOptionCapture(name, value string) Argument {
	return Argument{kind: KindOption, name: name, value: value, captured: true}
}

// NewFlag returns a flag Argument with no captured value.
func NewFlag(name byte) Argument {
	return Argument{kind: KindFlag, name: string([]byte{name})}
}

// NewFlagCapture returns a flag Argument with a captured value.
func NewFlagCapture(name byte, value string) Argument {
	return Argument{kind: KindFlag, name: string([]byte{name}), value: value, captured: true}
}

// Kind reports which variant this Argument holds.
func (a Argument) Kind() Kind {
	return a.kind
}

// Name returns the argument's name: the bare text for a parameter, the
// prefix-stripped name for an option, or the flag character as a
// one-character string. The zero Argument returns "".
func (a Argument) Name() string {
	return a.name
}

// HasValue reports whether a value was captured for this argument.
// Parameters never capture.
func (a Argument) HasValue() bool {
	return a.captured
}

// Value returns the captured value, if any.
func (a Argument) Value() (string, bool) {
	return a.value, a.captured
}

// Parameter returns the parameter text, or ErrKindMismatch if this
// Argument is not a parameter.
func (a Argument) Parameter() (string, error) {
	if a.kind != KindParameter {
		return "", fmt.Errorf("argument %q is a %s, not a parameter: %w", a.name, a.kind, ErrKindMismatch)
	}
	return a.name, nil
}

// Option returns the option payload, or ErrKindMismatch if this Argument
// is not an option.
func (a Argument) Option() (Option, error) {
	if a.kind != KindOption {
		return Option{}, fmt.Errorf("argument %q is a %s, not an option: %w", a.name, a.kind, ErrKindMismatch)
	}
	return Option{Name: a.name, Value: a.value, Captured: a.captured}, nil
}

// Flag returns the flag payload, or ErrKindMismatch if this Argument is
// not a flag.
func (a Argument) Flag() (Flag, error) {
	if a.kind != KindFlag {
		return Flag{}, fmt.Errorf("argument %q is a %s, not a flag: %w", a.name, a.kind, ErrKindMismatch)
	}
	return Flag{Name: a.name[0], Value: a.value, Captured: a.captured}, nil
}

// String renders the argument in canonical command-line form: bare text
// for parameters, a two-delimiter prefix for options, a one-delimiter
// prefix for flags. Captured values are not included.
func (a Argument) String() string {
	switch a.kind {
	case KindOption:
		return "--" + a.name
	case KindFlag:
		return "-" + a.name
	default:
		return a.name
	}
}
