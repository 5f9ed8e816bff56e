package argv

import "strings"

// Args is a read-only view over a classified sequence. It never mutates
// the sequence, so a single value is safe for concurrent readers.
type Args struct {
	arg0    string
	hasArg0 bool
	args    []Argument
}

// FindOpts narrows Find and FindAll matching. The zero value matches any
// kind, starts at the beginning, and compares names only.
type FindOpts struct {
	// Kind restricts matches to one argument kind. KindNone matches all.
	Kind Kind

	// Start is the index the linear scan begins at.
	Start int

	// CheckValues additionally matches options and flags whose captured
	// value equals the searched name.
	CheckValues bool
}

// New wraps an already-classified sequence. The slice is copied so later
// caller mutations cannot reach the view.
func New(args []Argument) Args {
	cp := make([]Argument, len(args))
	copy(cp, args)
	return Args{args: cp}
}

// Parse classifies tokens with cfg and wraps the result.
func Parse(tokens []string, cfg Config) Args {
	return Args{args: Classify(tokens, cfg)}
}

// ParseArgv classifies a full argument vector as passed to a program
// entry point: argv[0] is kept aside as Arg0 and not classified.
func ParseArgv(argv []string, cfg Config) Args {
	if len(argv) == 0 {
		return Args{}
	}
	return Args{
		arg0:    argv[0],
		hasArg0: true,
		args:    Classify(argv[1:], cfg),
	}
}

// Arg0 returns the program invocation path, when one was provided.
func (a Args) Arg0() (string, bool) {
	return a.arg0, a.hasArg0
}

// Len returns the number of classified arguments.
func (a Args) Len() int {
	return len(a.args)
}

// At returns the argument at index i. It panics when i is out of range,
// like a slice access.
func (a Args) At(i int) Argument {
	return a.args[i]
}

// Slice returns a copy of the classified sequence in encounter order.
func (a Args) Slice() []Argument {
	cp := make([]Argument, len(a.args))
	copy(cp, a.args)
	return cp
}

// Find scans linearly from opts.Start for the first argument matching
// name and returns its index, or -1 when there is no match. A
// one-character name also matches flags by character. With
// opts.CheckValues, captured values of options and flags match too.
func (a Args) Find(name string, opts FindOpts) int {
	for i := max(opts.Start, 0); i < len(a.args); i++ {
		if a.matches(a.args[i], name, opts) {
			return i
		}
	}
	return -1
}

// FindAll returns the indices of every match for name, in encounter
// order.
func (a Args) FindAll(name string, opts FindOpts) []int {
	var hits []int
	for {
		i := a.Find(name, opts)
		if i < 0 {
			return hits
		}
		hits = append(hits, i)
		opts.Start = i + 1 // strictly increasing, so the scan terminates
	}
}

func (a Args) matches(arg Argument, name string, opts FindOpts) bool {
	if opts.Kind != KindNone && arg.Kind() != opts.Kind {
		return false
	}
	switch arg.Kind() {
	case KindParameter:
		return arg.Name() == name
	case KindFlag:
		if len(name) == 1 && arg.Name() == name {
			return true
		}
	case KindOption:
		if arg.Name() == name {
			return true
		}
	}
	if opts.CheckValues {
		if v, ok := arg.Value(); ok && v == name {
			return true
		}
	}
	return false
}

// Has reports whether an argument of any kind matches name.
func (a Args) Has(name string) bool {
	return a.Find(name, FindOpts{}) >= 0
}

// HasKind reports whether an argument of the given kind matches name.
func (a Args) HasKind(name string, kind Kind) bool {
	return a.Find(name, FindOpts{Kind: kind}) >= 0
}

// Value returns the captured value of the first argument matching name.
// A miss and a hit without a captured value both report false.
func (a Args) Value(name string) (string, bool) {
	return a.ValueKind(name, KindNone)
}

// ValueKind is Value restricted to one argument kind.
func (a Args) ValueKind(name string, kind Kind) (string, bool) {
	i := a.Find(name, FindOpts{Kind: kind})
	if i < 0 {
		return "", false
	}
	return a.args[i].Value()
}

// Parameters returns the text of every parameter, in encounter order.
func (a Args) Parameters() []string {
	var out []string
	for _, arg := range a.args {
		if arg.Kind() == KindParameter {
			out = append(out, arg.Name())
		}
	}
	return out
}

// Options returns every option payload, in encounter order.
func (a Args) Options() []Option {
	var out []Option
	for _, arg := range a.args {
		if opt, err := arg.Option(); err == nil {
			out = append(out, opt)
		}
	}
	return out
}

// Flags returns every flag payload, in encounter order.
func (a Args) Flags() []Flag {
	var out []Flag
	for _, arg := range a.args {
		if fl, err := arg.Flag(); err == nil {
			out = append(out, fl)
		}
	}
	return out
}

// Any reports whether at least one of the names is present.
func (a Args) Any(names ...string) bool {
	for _, name := range names {
		if a.Has(name) {
			return true
		}
	}
	return false
}

// All reports whether every one of the names is present.
func (a Args) All(names ...string) bool {
	for _, name := range names {
		if !a.Has(name) {
			return false
		}
	}
	return true
}

// String renders the sequence in canonical command-line form, one record
// per token joined by single spaces. Captured values are not rendered, so
// the output is a display form, not parser input.
func (a Args) String() string {
	parts := make([]string, len(a.args))
	for i, arg := range a.args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
