package errs

import (
	"errors"
	"fmt"
	"testing"
)

var errorMessageTests = []struct {
	err      Error
	wantMsg  string
	wantKind Kind
}{
	{DuplicateName{"x"}, "variable x is already declared", KindDuplicateName},
	{UnknownType{"Foo"}, "unknown type Foo", KindUnknownType},
	{UndefinedVariable{"y"}, "variable y does not exist", KindUndefinedVariable},
	{CoercionError{"int", "abc"}, `cannot convert "abc" to int`, KindCoercionError},
	{UnsupportedLiteral{"char literal"}, "unsupported literal: char literal", KindUnsupportedLiteral},
	{UnsupportedOperand{"binary expression"}, "unsupported operand: binary expression", KindUnsupportedOperand},
	{UnsupportedOperandTypes{"+", "String", "int"}, "unsupported operand types for +: String and int", KindUnsupportedOperandTypes},
	{UnsupportedOperator{"*"}, "unsupported operator: *", KindUnsupportedOperator},
	{UnsupportedAssignmentOperator{"+="}, "unsupported assignment operator: +=", KindUnsupportedAssignmentOperator},
	{UnsupportedStatement{"if statement"}, "unsupported statement: if statement", KindUnsupportedStatement},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
		if gotKind := test.err.Kind(); gotKind != test.wantKind {
			t.Errorf("got kind %v, want %v", gotKind, test.wantKind)
		}
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", UndefinedVariable{"x"})
	if kind, ok := KindOf(wrapped); !ok || kind != KindUndefinedVariable {
		t.Errorf("KindOf(wrapped) -> (%v, %v), want (%v, true)", kind, ok, KindUndefinedVariable)
	}
	if kind, ok := KindOf(errors.New("plain")); ok {
		t.Errorf("KindOf(plain error) -> (%v, true), want false", kind)
	}
}
