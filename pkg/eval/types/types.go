// Package types is the registry of the type names that variables can be
// declared with.
//
// The registry is a fixed table built at startup. Each entry maps a type name
// to a storage tag, and the tag selects the rule for converting text to a
// value of that type.
package types

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/eval/errs"
	"github.com/dumbjshell/dumbjshell/pkg/eval/vals"
)

// Entry describes a supported type.
type Entry struct {
	Name string
	Tag  vals.Tag
}

// Coerce converts text to a value of the type.
func (e *Entry) Coerce(text string) (any, error) {
	v, ok := coercers[e.Tag](text)
	if !ok {
		return nil, errs.CoercionError{Type: e.Name, Text: text}
	}
	return v, nil
}

// Coercion rules, indexed by tag.
var coercers = [vals.NTags]func(string) (any, bool){
	vals.Int32: func(s string) (any, bool) {
		i, err := strconv.ParseInt(s, 10, 32)
		return int32(i), err == nil
	},
	vals.Int64: func(s string) (any, bool) {
		i, err := strconv.ParseInt(s, 10, 64)
		return i, err == nil
	},
	vals.Bool: func(s string) (any, bool) {
		switch s {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	},
	vals.Float32: func(s string) (any, bool) {
		f, ok := parseFloat(s, 32)
		return float32(f), ok
	},
	vals.Float64: func(s string) (any, bool) {
		return parseFloat(s, 64)
	},
	vals.Str: func(s string) (any, bool) { return s, true },
}

// Parses floating point numbers in the format accepted by Java's
// Double.parseDouble: an optional sign followed by a decimal or hexadecimal
// number with an optional f/F/d/D suffix, Infinity or NaN.
func parseFloat(s string, bitSize int) (float64, bool) {
	body, sign := s, 1.0
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}
	if body != "" && (body[0] == '+' || body[0] == '-') {
		return 0, false
	}
	switch body {
	case "Infinity":
		return math.Inf(int(sign)), true
	case "NaN":
		return math.NaN(), true
	}
	if lower := strings.ToLower(body); strings.Contains(lower, "inf") ||
		strings.Contains(lower, "nan") {
		// Spellings accepted by strconv but not by Java.
		return 0, false
	}
	if n := len(body); n > 1 && strings.ContainsRune("fFdD", rune(body[n-1])) {
		body = body[:n-1]
	}
	f, err := strconv.ParseFloat(body, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return sign * f, true
}

var (
	registry = map[string]*Entry{}
	names    []string
)

func init() {
	for _, e := range []Entry{
		{"int", vals.Int32},
		{"long", vals.Int64},
		{"boolean", vals.Bool},
		{"float", vals.Float32},
		{"double", vals.Float64},
		{"String", vals.Str},
		// Boxed types share the storage and rules of their primitive types.
		{"Integer", vals.Int32},
		{"Long", vals.Int64},
		{"Boolean", vals.Bool},
		{"Float", vals.Float32},
		{"Double", vals.Float64},
	} {
		e := e
		registry[e.Name] = &e
		names = append(names, e.Name)
	}
}

// Lookup finds the entry of a type name. Names are case-sensitive.
func Lookup(name string) (*Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Coerce converts text to a value of the named type. It fails with
// errs.UnknownType if the name is not registered, and with errs.CoercionError
// if the text is not valid for the type.
func Coerce(name, text string) (any, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, errs.UnknownType{Name: name}
	}
	return e.Coerce(text)
}

// Names returns the supported type names, primitive types first.
func Names() []string {
	return append([]string(nil), names...)
}
