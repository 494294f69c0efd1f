package evaltest

import (
	"fmt"
	"reflect"

	"github.com/dumbjshell/dumbjshell/pkg/eval/errs"
)

type errorMatcher interface{ matchError(error) bool }

// AnyParseError is an error that can be passed to Case.Throws to match any
// parse error.
var AnyParseError anyParseError

type anyParseError struct{}

func (anyParseError) Error() string           { return "any parse error" }
func (anyParseError) matchError(e error) bool { return isParseError(e) }

// ErrorWithKind returns an error that can be passed to Case.Throws to match
// any error of the given kind.
func ErrorWithKind(k errs.Kind) error { return errWithKind{k} }

type errWithKind struct{ k errs.Kind }

func (e errWithKind) Error() string { return "error of kind " + string(e.k) }

func (e errWithKind) matchError(e2 error) bool {
	k, ok := errs.KindOf(e2)
	return ok && k == e.k
}

// ErrorWithType returns an error that can be passed to Case.Throws to match
// any error with the same type as the argument.
func ErrorWithType(v error) error { return errWithType{v} }

type errWithType struct{ v error }

func (e errWithType) Error() string { return fmt.Sprintf("error with type %T", e.v) }

func (e errWithType) matchError(e2 error) bool {
	return reflect.TypeOf(e.v) == reflect.TypeOf(e2)
}

// ErrorWithMessage returns an error that can be passed to Case.Throws to match
// any error with the given message.
func ErrorWithMessage(msg string) error { return errWithMessage{msg} }

type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "error with message " + e.msg }

func (e errWithMessage) matchError(e2 error) bool {
	return e2 != nil && e.msg == e2.Error()
}
