// Package vars implements the persistent variable environment of an
// evaluation session.
package vars

import (
	"github.com/dumbjshell/dumbjshell/pkg/eval/errs"
	"github.com/dumbjshell/dumbjshell/pkg/eval/types"
	"github.com/dumbjshell/dumbjshell/pkg/eval/vals"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
)

// Binding is a named, typed storage slot.
type Binding struct {
	Name  string
	Type  *types.Entry
	Value any
}

// String returns the binding written as a declaration, like "int x = 5".
func (b Binding) String() string {
	return b.Type.Name + " " + b.Name + " = " + literalForm(b.Value)
}

func literalForm(v any) string {
	if s, ok := v.(string); ok {
		return parse.Quote(s)
	}
	return vals.ToString(v)
}

// Store keeps bindings in declaration order, with constant-time lookup by
// name. A binding is never removed, and its type never changes.
//
// A Store is not safe for concurrent use.
type Store struct {
	bindings []Binding
	index    map[string]int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Declare creates a binding of the named type, with its value coerced from
// text. It fails with errs.DuplicateName if the name is taken,
// errs.UnknownType if the type is not supported and errs.CoercionError if the
// text does not convert; in those cases the store is unchanged.
func (s *Store) Declare(name, typeName, text string) (any, error) {
	if _, ok := s.index[name]; ok {
		return nil, errs.DuplicateName{Name: name}
	}
	typ, ok := types.Lookup(typeName)
	if !ok {
		return nil, errs.UnknownType{Name: typeName}
	}
	v, err := typ.Coerce(text)
	if err != nil {
		return nil, err
	}
	s.index[name] = len(s.bindings)
	s.bindings = append(s.bindings, Binding{name, typ, v})
	return v, nil
}

// Read returns the value of a variable.
func (s *Store) Read(name string) (any, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, errs.UndefinedVariable{Name: name}
	}
	return s.bindings[i].Value, nil
}

// Assign replaces the value of a variable with one coerced from text, using
// the type the variable was declared with. The old value is kept if the
// coercion fails.
func (s *Store) Assign(name, text string) (any, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, errs.UndefinedVariable{Name: name}
	}
	b := &s.bindings[i]
	v, err := b.Type.Coerce(text)
	if err != nil {
		return nil, err
	}
	b.Value = v
	return v, nil
}

// Lookup returns the binding of a name.
func (s *Store) Lookup(name string) (Binding, bool) {
	i, ok := s.index[name]
	if !ok {
		return Binding{}, false
	}
	return s.bindings[i], true
}

// Bindings returns a copy of all bindings in declaration order.
func (s *Store) Bindings() []Binding {
	return append([]Binding(nil), s.bindings...)
}

// Len returns the number of bindings.
func (s *Store) Len() int { return len(s.bindings) }
