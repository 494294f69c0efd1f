// Package errs declares the errors returned by the evaluator and the variable
// store.
//
// Each error is a struct type, so that callers can inspect it with errors.As;
// all of them also report a Kind.
package errs

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies errors.
type Kind string

// Possible values of Kind.
const (
	KindDuplicateName                 Kind = "DuplicateName"
	KindUnknownType                   Kind = "UnknownType"
	KindUndefinedVariable             Kind = "UndefinedVariable"
	KindCoercionError                 Kind = "CoercionError"
	KindUnsupportedLiteral            Kind = "UnsupportedLiteral"
	KindUnsupportedOperand            Kind = "UnsupportedOperand"
	KindUnsupportedOperandTypes       Kind = "UnsupportedOperandTypes"
	KindUnsupportedOperator           Kind = "UnsupportedOperator"
	KindUnsupportedAssignmentOperator Kind = "UnsupportedAssignmentOperator"
	KindUnsupportedStatement          Kind = "UnsupportedStatement"
)

// Error is implemented by all errors in this package.
type Error interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of the first error in err's chain that is an Error.
func KindOf(err error) (Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return "", false
}

// DuplicateName is returned when declaring a variable whose name is taken.
type DuplicateName struct{ Name string }

func (e DuplicateName) Error() string {
	return fmt.Sprintf("variable %s is already declared", e.Name)
}

func (DuplicateName) Kind() Kind { return KindDuplicateName }

// UnknownType is returned when a type name is not supported.
type UnknownType struct{ Name string }

func (e UnknownType) Error() string { return "unknown type " + e.Name }

func (UnknownType) Kind() Kind { return KindUnknownType }

// UndefinedVariable is returned when reading or assigning a variable that was
// never declared.
type UndefinedVariable struct{ Name string }

func (e UndefinedVariable) Error() string {
	return fmt.Sprintf("variable %s does not exist", e.Name)
}

func (UndefinedVariable) Kind() Kind { return KindUndefinedVariable }

// CoercionError is returned when a text cannot be converted to a value of a
// type.
type CoercionError struct {
	Type string
	Text string
}

func (e CoercionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", strconv.Quote(e.Text), e.Type)
}

func (CoercionError) Kind() Kind { return KindCoercionError }

// UnsupportedLiteral is returned for literals other than integer, string and
// boolean ones.
type UnsupportedLiteral struct{ What string }

func (e UnsupportedLiteral) Error() string { return "unsupported literal: " + e.What }

func (UnsupportedLiteral) Kind() Kind { return KindUnsupportedLiteral }

// UnsupportedOperand is returned when an operand of a binary expression is
// neither a literal nor a variable name.
type UnsupportedOperand struct{ What string }

func (e UnsupportedOperand) Error() string { return "unsupported operand: " + e.What }

func (UnsupportedOperand) Kind() Kind { return KindUnsupportedOperand }

// UnsupportedOperandTypes is returned when an operator does not apply to the
// types of its operands.
type UnsupportedOperandTypes struct {
	Op          string
	Left, Right string
}

func (e UnsupportedOperandTypes) Error() string {
	return fmt.Sprintf("unsupported operand types for %s: %s and %s", e.Op, e.Left, e.Right)
}

func (UnsupportedOperandTypes) Kind() Kind { return KindUnsupportedOperandTypes }

// UnsupportedOperator is returned for binary operators other than + and -.
type UnsupportedOperator struct{ Op string }

func (e UnsupportedOperator) Error() string { return "unsupported operator: " + e.Op }

func (UnsupportedOperator) Kind() Kind { return KindUnsupportedOperator }

// UnsupportedAssignmentOperator is returned for compound assignments.
type UnsupportedAssignmentOperator struct{ Op string }

func (e UnsupportedAssignmentOperator) Error() string {
	return "unsupported assignment operator: " + e.Op
}

func (UnsupportedAssignmentOperator) Kind() Kind { return KindUnsupportedAssignmentOperator }

// UnsupportedStatement is returned for statements and expressions the
// evaluator does not handle.
type UnsupportedStatement struct{ What string }

func (e UnsupportedStatement) Error() string { return "unsupported statement: " + e.What }

func (UnsupportedStatement) Kind() Kind { return KindUnsupportedStatement }
