// Package vals contains the runtime values of the evaluator.
//
// A value is an any holding one of the Go types int32, int64, bool, float32,
// float64 and string. Each of them corresponds to a storage Tag.
package vals

import "fmt"

// Tag identifies how a value is stored.
type Tag uint8

// Possible values of Tag.
const (
	Int32 Tag = iota
	Int64
	Bool
	Float32
	Float64
	Str

	// NTags is the number of valid tags.
	NTags
)

var tagNames = [NTags]string{
	Int32: "Int32", Int64: "Int64", Bool: "Bool",
	Float32: "Float32", Float64: "Float64", Str: "Str",
}

// Names of the primitive types whose storage uses each tag.
var kindNames = [NTags]string{
	Int32: "int", Int64: "long", Bool: "boolean",
	Float32: "float", Float64: "double", Str: "String",
}

func (t Tag) String() string {
	if t < NTags {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Kind returns the name of the primitive type stored with the tag.
func (t Tag) Kind() string {
	if t < NTags {
		return kindNames[t]
	}
	return t.String()
}

// TagOf returns the tag of a value, and whether the value is valid.
func TagOf(v any) (Tag, bool) {
	switch v.(type) {
	case int32:
		return Int32, true
	case int64:
		return Int64, true
	case bool:
		return Bool, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case string:
		return Str, true
	}
	return 0, false
}

// Kind returns the type name of a value, like "int" or "String". For values
// that are not valid, it returns the Go type name preceded by "!!".
func Kind(v any) string {
	if t, ok := TagOf(v); ok {
		return t.Kind()
	}
	return fmt.Sprintf("!!%T", v)
}
