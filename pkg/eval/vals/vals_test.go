package vals

import (
	"math"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/tt"
)

func TestTagOf(t *testing.T) {
	tt.Test(t, tt.Fn("TagOf", TagOf), tt.Table{
		tt.Args(int32(1)).Rets(Int32, true),
		tt.Args(int64(1)).Rets(Int64, true),
		tt.Args(true).Rets(Bool, true),
		tt.Args(float32(1)).Rets(Float32, true),
		tt.Args(1.0).Rets(Float64, true),
		tt.Args("x").Rets(Str, true),
		tt.Args(1).Rets(Int32, false),
		tt.Args(nil).Rets(Int32, false),
	})
}

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		tt.Args(int32(1)).Rets("int"),
		tt.Args(int64(1)).Rets("long"),
		tt.Args(false).Rets("boolean"),
		tt.Args(float32(1)).Rets("float"),
		tt.Args(1.0).Rets("double"),
		tt.Args("x").Rets("String"),
		tt.Args(1).Rets("!!int"),
	})
}

func TestTagString(t *testing.T) {
	tt.Test(t, tt.Fn("Tag.String", Tag.String), tt.Table{
		tt.Args(Int32).Rets("Int32"),
		tt.Args(Str).Rets("Str"),
		tt.Args(Tag(42)).Rets("Tag(42)"),
	})
}

func TestToString(t *testing.T) {
	tt.Test(t, tt.Fn("ToString", ToString), tt.Table{
		tt.Args(int32(-5)).Rets("-5"),
		tt.Args(int64(math.MaxInt64)).Rets("9223372036854775807"),
		tt.Args(true).Rets("true"),
		tt.Args("a b").Rets("a b"),

		tt.Args(1.0).Rets("1.0"),
		tt.Args(0.0).Rets("0.0"),
		tt.Args(math.Copysign(0, -1)).Rets("-0.0"),
		tt.Args(1.5).Rets("1.5"),
		tt.Args(0.001).Rets("0.001"),
		tt.Args(0.0001).Rets("1.0E-4"),
		tt.Args(1234567.0).Rets("1234567.0"),
		tt.Args(1e7).Rets("1.0E7"),
		tt.Args(1.25e10).Rets("1.25E10"),
		tt.Args(math.NaN()).Rets("NaN"),
		tt.Args(math.Inf(1)).Rets("Infinity"),
		tt.Args(math.Inf(-1)).Rets("-Infinity"),

		tt.Args(float32(0.1)).Rets("0.1"),
		tt.Args(float32(3)).Rets("3.0"),
	})
}
