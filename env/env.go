// Package env parses KEY=VALUE environment blocks into a queryable view.
// It operates on caller-supplied pairs (typically os.Environ()); nothing
// here touches process state.
package env

import (
	"os"
	"path/filepath"
	"strings"
)

// Var is one environment variable. List-valued variables (PATH and
// friends) are accessed through List.
type Var struct {
	Name  string
	Value string
}

// List splits the value on the OS path-list separator. A plain value
// comes back as a single element.
func (v Var) List() []string {
	return filepath.SplitList(v.Value)
}

// IsList reports whether the value contains the OS path-list separator.
func (v Var) IsList() bool {
	return strings.ContainsRune(v.Value, os.PathListSeparator)
}

func (v Var) String() string {
	return v.Name + "=" + v.Value
}

// Env is a read-only view over a parsed environment block.
type Env struct {
	vars []Var
}

// Parse splits each pair on its first '='. Pairs without one become
// variables with an empty value; nothing is rejected.
func Parse(pairs []string) Env {
	vars := make([]Var, 0, len(pairs))
	for _, pair := range pairs {
		name, value, _ := strings.Cut(pair, "=")
		vars = append(vars, Var{Name: name, Value: value})
	}
	return Env{vars: vars}
}

// System parses the current process environment.
func System() Env {
	return Parse(os.Environ())
}

// Len returns the number of variables.
func (e Env) Len() int {
	return len(e.vars)
}

// Lookup finds a variable by name, case-insensitively. The first match
// in block order wins.
func (e Env) Lookup(name string) (Var, bool) {
	for _, v := range e.vars {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Var{}, false
}

// LookupExact finds a variable by name, case-sensitively.
func (e Env) LookupExact(name string) (Var, bool) {
	for _, v := range e.vars {
		if v.Name == name {
			return v, true
		}
	}
	return Var{}, false
}

// Has reports whether a variable with the given name exists
// (case-insensitive).
func (e Env) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Path returns the entries of the PATH variable, split on the OS
// path-list separator with empty entries dropped.
func (e Env) Path() ([]string, bool) {
	v, ok := e.Lookup("PATH")
	if !ok {
		return nil, false
	}
	var dirs []string
	for _, dir := range v.List() {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs, true
}

// Home returns the value of the HOME variable.
func (e Env) Home() (string, bool) {
	v, ok := e.Lookup("HOME")
	if !ok {
		return "", false
	}
	return v.Value, true
}
