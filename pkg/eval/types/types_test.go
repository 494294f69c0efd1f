package types

import (
	"math"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/eval/errs"
	"github.com/dumbjshell/dumbjshell/pkg/eval/vals"
	"github.com/dumbjshell/dumbjshell/pkg/tt"
)

func TestLookup(t *testing.T) {
	for _, test := range []struct {
		name    string
		wantTag vals.Tag
	}{
		{"int", vals.Int32},
		{"Integer", vals.Int32},
		{"long", vals.Int64},
		{"boolean", vals.Bool},
		{"float", vals.Float32},
		{"Double", vals.Float64},
		{"String", vals.Str},
	} {
		e, ok := Lookup(test.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", test.name)
			continue
		}
		if e.Name != test.name || e.Tag != test.wantTag {
			t.Errorf("Lookup(%q) -> %+v, want tag %v", test.name, e, test.wantTag)
		}
	}

	for _, name := range []string{"string", "char", "Object", "INT", ""} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) found, want not found", name)
		}
	}
}

func TestCoerce(t *testing.T) {
	tt.Test(t, tt.Fn("Coerce", Coerce), tt.Table{
		tt.Args("int", "42").Rets(int32(42), nil),
		tt.Args("int", "-7").Rets(int32(-7), nil),
		tt.Args("int", "+7").Rets(int32(7), nil),
		tt.Args("int", "2147483647").Rets(int32(math.MaxInt32), nil),
		tt.Args("int", "2147483648").Rets(nil, errs.CoercionError{Type: "int", Text: "2147483648"}),
		tt.Args("int", "0x10").Rets(nil, errs.CoercionError{Type: "int", Text: "0x10"}),
		tt.Args("int", "1_000").Rets(nil, errs.CoercionError{Type: "int", Text: "1_000"}),
		tt.Args("Integer", "abc").Rets(nil, errs.CoercionError{Type: "Integer", Text: "abc"}),

		tt.Args("long", "9223372036854775807").Rets(int64(math.MaxInt64), nil),
		tt.Args("long", "2147483648").Rets(int64(2147483648), nil),

		tt.Args("boolean", "true").Rets(true, nil),
		tt.Args("boolean", "false").Rets(false, nil),
		tt.Args("boolean", "True").Rets(nil, errs.CoercionError{Type: "boolean", Text: "True"}),
		tt.Args("boolean", "1").Rets(nil, errs.CoercionError{Type: "boolean", Text: "1"}),

		tt.Args("double", "1.5").Rets(1.5, nil),
		tt.Args("double", "2").Rets(2.0, nil),
		tt.Args("double", "1e3").Rets(1000.0, nil),
		tt.Args("double", "2.5d").Rets(2.5, nil),
		tt.Args("double", "-Infinity").Rets(math.Inf(-1), nil),
		tt.Args("double", "inf").Rets(nil, errs.CoercionError{Type: "double", Text: "inf"}),
		tt.Args("double", "").Rets(nil, errs.CoercionError{Type: "double", Text: ""}),
		tt.Args("double", "--5").Rets(nil, errs.CoercionError{Type: "double", Text: "--5"}),
		tt.Args("double", "-+5").Rets(nil, errs.CoercionError{Type: "double", Text: "-+5"}),
		tt.Args("double", "+-5").Rets(nil, errs.CoercionError{Type: "double", Text: "+-5"}),
		tt.Args("float", "--Infinity").Rets(nil, errs.CoercionError{Type: "float", Text: "--Infinity"}),
		tt.Args("float", "0.5f").Rets(float32(0.5), nil),
		tt.Args("Float", "x").Rets(nil, errs.CoercionError{Type: "Float", Text: "x"}),

		tt.Args("String", "any text").Rets("any text", nil),
		tt.Args("String", "").Rets("", nil),

		tt.Args("char", "c").Rets(nil, errs.UnknownType{Name: "char"}),
	})
}

func TestCoerce_NaN(t *testing.T) {
	v, err := Coerce("double", "NaN")
	if f, ok := v.(float64); err != nil || !ok || !math.IsNaN(f) {
		t.Errorf(`Coerce("double", "NaN") -> (%v, %v), want (NaN, nil)`, v, err)
	}
}

func TestCoerce_RoundTripsCanonicalForm(t *testing.T) {
	for _, test := range []struct{ typ, text string }{
		{"int", "-12"}, {"long", "12345678901"}, {"boolean", "true"},
		{"float", "0.1"}, {"double", "1.0E10"}, {"double", "-Infinity"},
		{"String", "hello"},
	} {
		v, err := Coerce(test.typ, test.text)
		if err != nil {
			t.Errorf("Coerce(%q, %q) -> error %v", test.typ, test.text, err)
			continue
		}
		again, err := Coerce(test.typ, vals.ToString(v))
		if err != nil || again != v {
			t.Errorf("Coerce(%q, ToString(%v)) -> (%v, %v), want (%v, nil)",
				test.typ, v, again, err, v)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 11 || names[0] != "int" {
		t.Errorf("Names() -> %v", names)
	}
	names[0] = "mutated"
	if Names()[0] != "int" {
		t.Errorf("Names() exposes the internal slice")
	}
}
