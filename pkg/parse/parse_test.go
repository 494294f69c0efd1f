package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/tt"
)

type rg = diag.Ranging

func src(code string) Source { return Source{Name: "[test]", Code: code} }

func lit(from, to int, kind LiteralKind, text string) *Literal {
	return &Literal{rg{From: from, To: to}, kind, text}
}

func name(from, to int, n string) *Name { return &Name{rg{From: from, To: to}, n} }

func TestParse(t *testing.T) {
	tt.Test(t, tt.Fn("Parse", Parse), tt.Table{
		// Expressions.
		tt.Args(src("x")).Rets(name(0, 1, "x"), nil),
		tt.Args(src("x;")).Rets(name(0, 1, "x"), nil),
		tt.Args(src("(x)")).Rets(name(1, 2, "x"), nil),
		tt.Args(src("2 + 3")).Rets(
			&Binary{rg{From: 0, To: 5}, lit(0, 1, IntLiteral, "2"), "+", lit(4, 5, IntLiteral, "3")}, nil),
		tt.Args(src("a - b")).Rets(
			&Binary{rg{From: 0, To: 5}, name(0, 1, "a"), "-", name(4, 5, "b")}, nil),
		tt.Args(src("2 * 3")).Rets(
			&Binary{rg{From: 0, To: 5}, lit(0, 1, IntLiteral, "2"), "*", lit(4, 5, IntLiteral, "3")}, nil),
		// Nested binary expressions are kept as they are.
		tt.Args(src("(1 + 2) + 3")).Rets(
			&Binary{rg{From: 0, To: 11},
				&Binary{rg{From: 1, To: 6}, lit(1, 2, IntLiteral, "1"), "+", lit(5, 6, IntLiteral, "2")},
				"+", lit(10, 11, IntLiteral, "3")}, nil),

		// Literals.
		tt.Args(src("-5")).Rets(lit(0, 2, IntLiteral, "-5"), nil),
		tt.Args(src("0x1F")).Rets(lit(0, 4, IntLiteral, "0x1F"), nil),
		tt.Args(src("5L")).Rets(lit(0, 2, LongLiteral, "5L"), nil),
		tt.Args(src("1.5")).Rets(lit(0, 3, FloatLiteral, "1.5"), nil),
		tt.Args(src("-1.5f")).Rets(lit(0, 5, FloatLiteral, "-1.5f"), nil),
		tt.Args(src("true")).Rets(lit(0, 4, BoolLiteral, "true"), nil),
		tt.Args(src("false")).Rets(lit(0, 5, BoolLiteral, "false"), nil),
		tt.Args(src(`"hello"`)).Rets(lit(0, 7, StringLiteral, "hello"), nil),
		tt.Args(src(`"a\tb"`)).Rets(lit(0, 6, StringLiteral, "a\tb"), nil),
		tt.Args(src(`""`)).Rets(lit(0, 2, StringLiteral, ""), nil),
		tt.Args(src("'c'")).Rets(lit(0, 3, CharLiteral, "'c'"), nil),
		tt.Args(src("null")).Rets(lit(0, 4, NullLiteral, "null"), nil),

		// Declarations.
		tt.Args(src("int x = 5;")).Rets(
			&VarDecl{rg{From: 0, To: 10}, "int", "x", lit(8, 9, IntLiteral, "5")}, nil),
		tt.Args(src("int x = 5")).Rets(
			&VarDecl{rg{From: 0, To: 9}, "int", "x", lit(8, 9, IntLiteral, "5")}, nil),
		tt.Args(src(`String s = "a";`)).Rets(
			&VarDecl{rg{From: 0, To: 15}, "String", "s", lit(11, 14, StringLiteral, "a")}, nil),
		tt.Args(src("int y = x - 1;")).Rets(
			&VarDecl{rg{From: 0, To: 14}, "int", "y",
				&Binary{rg{From: 8, To: 13}, name(8, 9, "x"), "-", lit(12, 13, IntLiteral, "1")}}, nil),
		tt.Args(src("int x;")).Rets(&VarDecl{rg{From: 0, To: 6}, "int", "x", nil}, nil),
		tt.Args(src("Foo f = 1;")).Rets(
			&VarDecl{rg{From: 0, To: 10}, "Foo", "f", lit(8, 9, IntLiteral, "1")}, nil),
		// Only the first declarator is kept.
		tt.Args(src("int a = 1, b = 2;")).Rets(
			&VarDecl{rg{From: 0, To: 17}, "int", "a", lit(8, 9, IntLiteral, "1")}, nil),

		// Assignments.
		tt.Args(src("x = 10")).Rets(
			&Assign{rg{From: 0, To: 6}, name(0, 1, "x"), "=", lit(4, 6, IntLiteral, "10")}, nil),
		tt.Args(src("x += 1")).Rets(
			&Assign{rg{From: 0, To: 6}, name(0, 1, "x"), "+=", lit(5, 6, IntLiteral, "1")}, nil),

		// Everything else.
		tt.Args(src("if (true) {}")).Rets(&Unsupported{rg{From: 0, To: 12}, "if_statement"}, nil),
		tt.Args(src("f()")).Rets(&Unsupported{rg{From: 0, To: 3}, "method_invocation"}, nil),
		tt.Args(src("!b")).Rets(&Unsupported{rg{From: 0, To: 2}, "unary_expression"}, nil),
	})
}

func TestParse_Errors(t *testing.T) {
	for _, code := range []string{"", "  ", "// nothing", "1 +", "int = 5;", "a; b", "x = = 1"} {
		_, err := Parse(src(code))
		var parseErr *diag.Error
		if !errors.As(err, &parseErr) || parseErr.Type != ErrorType {
			t.Errorf("Parse(%q) returns error %v, want parse error", code, err)
		}
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	tt.Test(t, tt.Fn("Parse", Parse), tt.Table{
		tt.Args(src("")).Rets(tt.Any, errorWithMessage("empty input")),
		tt.Args(src("// nothing")).Rets(tt.Any, errorWithMessage("empty input")),
		tt.Args(src("a; b")).Rets(tt.Any, errorWithMessage("more than one statement")),
	})
}

func TestParse_ErrorPositions(t *testing.T) {
	_, err := Parse(src("a; b"))
	if got, want := err.Error(), "parse error: [test]:1:4: more than one statement"; got != want {
		t.Errorf("got error %q, want %q", got, want)
	}
	for _, code := range []string{"1 +", "x = (1"} {
		_, err := Parse(src(code))
		r := err.(*diag.Error).Range()
		if r.From < 0 || r.To > len(code) || r.From > r.To {
			t.Errorf("Parse(%q) returns error with range %v outside the source", code, r)
		}
	}
}

type errorWithMessage string

func (m errorWithMessage) Match(v tt.RetValue) bool {
	err, ok := v.(*diag.Error)
	return ok && err.Message == string(m)
}

func TestPprint(t *testing.T) {
	n, _ := Parse(src("int x = 2 + 3;"))
	var sb strings.Builder
	Pprint(&sb, n)
	out := sb.String()
	for _, want := range []string{"parse.VarDecl", "parse.Binary", `"int"`, `"+"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Pprint output %q does not contain %q", out, want)
		}
	}
}

func TestLiteralKind_String(t *testing.T) {
	tt.Test(t, tt.Fn("LiteralKind.String", LiteralKind.String), tt.Table{
		tt.Args(IntLiteral).Rets("int"),
		tt.Args(FloatLiteral).Rets("floating point"),
		tt.Args(TextBlockLiteral).Rets("text block"),
		tt.Args(LiteralKind(100)).Rets("unknown"),
	})
}
