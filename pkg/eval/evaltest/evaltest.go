// Package evaltest provides a framework for testing the evaluator.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("int x = 5;").Then("x + 1").Puts("5", "6"),
//	    That("y").Throws(errs.UndefinedVariable{Name: "y"}))
//
// Each code piece of a case is parsed and evaluated in turn by the same
// Evaler; evaluation continues after errors.
package evaltest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/eval"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	setup  func(ev *eval.Evaler)
	verify func(t *testing.T, ev *eval.Evaler)
	want   result
}

type result struct {
	ValueOut []string

	ParseError error
	Error      error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines, which makes them one piece of code; use Then for
// code pieces that are evaluated separately.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "2 + 3" evaluates to "5" reads:
//
//	That("2 + 3").Puts("5")
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that evaluates the given code in addition.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Evaler before the code is evaluated.
func (c Case) WithSetup(f func(*eval.Evaler)) Case {
	c.setup = f
	return c
}

// Passes returns an altered Case that runs an additional verification function
// after all the code has been evaluated.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler)) Case {
	c.verify = f
	return c
}

// Puts returns an altered Case that requires the code pieces that evaluate
// successfully to produce the given results, in order.
func (c Case) Puts(vs ...string) Case {
	c.want.ValueOut = vs
	return c
}

// Throws returns an altered Case that requires the last failing code piece to
// fail with the given error. The error supports special matcher values
// constructed by functions like ErrorWithKind.
func (c Case) Throws(err error) Case {
	c.want.Error = err
	return c
}

// DoesNotParse returns an altered Case that requires a code piece to fail
// parsing.
func (c Case) DoesNotParse() Case {
	c.want.ParseError = AnyParseError
	return c
}

// Test runs test cases. For each test case, a new Evaler is created with
// NewEvaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with NewEvaler and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			r := evalAndCollect(ev, tc.codes)

			if tc.verify != nil {
				tc.verify(t, ev)
			}
			if diff := cmp.Diff(tc.want.ValueOut, r.ValueOut, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("got value out (-want +got):\n%s", diff)
			}
			if !matchErr(tc.want.ParseError, r.ParseError) {
				t.Errorf("got parse error %v, want %v", r.ParseError, tc.want.ParseError)
			}
			if !matchErr(tc.want.Error, r.Error) {
				t.Errorf("unexpected error")
				t.Logf("got: %T: %v", r.Error, r.Error)
				t.Errorf("want: %v", tc.want.Error)
			}
		})
	}
}

func evalAndCollect(ev *eval.Evaler, texts []string) result {
	var r result
	for _, text := range texts {
		n, err := parse.Parse(parse.Source{Name: "[test]", Code: text})
		if err != nil {
			// NOTE: If multiple code pieces fail to parse, only the last
			// parse error is saved.
			r.ParseError = err
			continue
		}
		out, err := ev.Eval(n)
		if err != nil {
			// NOTE: If multiple code pieces fail, only the last error is
			// saved.
			r.Error = err
			continue
		}
		r.ValueOut = append(r.ValueOut, out)
	}
	return r
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got)
}

func isParseError(err error) bool {
	e, ok := err.(*diag.Error)
	return ok && e.Type == parse.ErrorType
}
