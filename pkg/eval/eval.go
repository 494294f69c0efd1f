// Package eval implements the evaluator.
//
// An Evaler owns a variable store that persists across calls to Eval, so a
// series of statements evaluated by the same Evaler forms one session.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/eval/errs"
	"github.com/dumbjshell/dumbjshell/pkg/eval/vals"
	"github.com/dumbjshell/dumbjshell/pkg/eval/vars"
	"github.com/dumbjshell/dumbjshell/pkg/logutil"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler evaluates nodes against a persistent variable store.
//
// An Evaler is not safe for concurrent use.
type Evaler struct {
	store *vars.Store
}

// NewEvaler creates an Evaler with an empty store.
func NewEvaler() *Evaler {
	return &Evaler{vars.NewStore()}
}

// NewEvalerWithStore creates an Evaler that uses the given store.
func NewEvalerWithStore(store *vars.Store) *Evaler {
	return &Evaler{store}
}

// Store returns the variable store of the Evaler.
func (ev *Evaler) Store() *vars.Store { return ev.store }

// EvalSource parses and evaluates the source.
func (ev *Evaler) EvalSource(src parse.Source) (string, error) {
	n, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	return ev.Eval(n)
}

// Eval evaluates a node and returns the canonical string form of its result.
// A failed evaluation leaves the store unchanged.
func (ev *Evaler) Eval(n parse.Node) (string, error) {
	s, err := ev.eval(n)
	if err != nil {
		logger.Printf("%T at %v: %v", n, n.Range(), err)
	}
	return s, err
}

func (ev *Evaler) eval(n parse.Node) (string, error) {
	switch n := n.(type) {
	case *parse.VarDecl:
		return ev.declare(n)
	case *parse.Name, *parse.Literal:
		v, err := ev.value(n)
		if err != nil {
			return "", err
		}
		return vals.ToString(v), nil
	case *parse.Binary:
		return ev.binary(n)
	case *parse.Assign:
		return ev.assign(n)
	default:
		return "", errs.UnsupportedStatement{What: describe(n)}
	}
}

func (ev *Evaler) declare(n *parse.VarDecl) (string, error) {
	if n.Init == nil {
		return "", errs.UnsupportedStatement{What: "declaration without initializer"}
	}
	init, err := ev.eval(n.Init)
	if err != nil {
		return "", err
	}
	if b, ok := ev.store.Lookup(n.Name); ok {
		// Declaring an existing name again keeps the old binding.
		logger.Printf("%s is already declared, keeping the old value", n.Name)
		return vals.ToString(b.Value), nil
	}
	v, err := ev.store.Declare(n.Name, n.Type, init)
	if err != nil {
		return "", err
	}
	return vals.ToString(v), nil
}

func (ev *Evaler) binary(n *parse.Binary) (string, error) {
	for _, operand := range []parse.Node{n.Left, n.Right} {
		switch operand.(type) {
		case *parse.Name, *parse.Literal:
		default:
			return "", errs.UnsupportedOperand{What: describe(operand)}
		}
	}
	left, err := ev.value(n.Left)
	if err != nil {
		return "", err
	}
	right, err := ev.value(n.Right)
	if err != nil {
		return "", err
	}
	v, err := binaryOp(n.Op, left, right)
	if err != nil {
		return "", err
	}
	return vals.ToString(v), nil
}

func binaryOp(op string, left, right any) (any, error) {
	switch op {
	case "+":
		switch l := left.(type) {
		case int32:
			if r, ok := right.(int32); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
	case "-":
		if l, ok := left.(int32); ok {
			if r, ok := right.(int32); ok {
				return l - r, nil
			}
		}
	default:
		return nil, errs.UnsupportedOperator{Op: op}
	}
	return nil, errs.UnsupportedOperandTypes{Op: op, Left: vals.Kind(left), Right: vals.Kind(right)}
}

func (ev *Evaler) assign(n *parse.Assign) (string, error) {
	if n.Op != "=" {
		return "", errs.UnsupportedAssignmentOperator{Op: n.Op}
	}
	target, ok := n.Target.(*parse.Name)
	if !ok {
		return "", errs.UnsupportedStatement{What: "assignment to " + describe(n.Target)}
	}
	text, err := ev.eval(n.Value)
	if err != nil {
		return "", err
	}
	v, err := ev.store.Assign(target.Name, text)
	if err != nil {
		return "", err
	}
	return vals.ToString(v), nil
}

// Evaluates a name or a literal to a value.
func (ev *Evaler) value(n parse.Node) (any, error) {
	switch n := n.(type) {
	case *parse.Name:
		return ev.store.Read(n.Name)
	case *parse.Literal:
		return literal(n)
	default:
		return nil, errs.UnsupportedOperand{What: describe(n)}
	}
}

func literal(n *parse.Literal) (any, error) {
	switch n.Kind {
	case parse.IntLiteral:
		if i, ok := parseInt32(n.Text); ok {
			return i, nil
		}
		return nil, errs.CoercionError{Type: "int", Text: n.Text}
	case parse.StringLiteral:
		return n.Text, nil
	case parse.BoolLiteral:
		return n.Text == "true", nil
	default:
		return nil, errs.UnsupportedLiteral{What: fmt.Sprintf("%s literal %s", n.Kind, n.Text)}
	}
}

// Parses the text of an int literal. Decimal literals must fit in an int32;
// hexadecimal, octal and binary literals may use all 32 bits, like 0xFFFFFFFF
// for -1.
func parseInt32(text string) (int32, bool) {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
	}
	digits := strings.ReplaceAll(text[len(sign):], "_", "")
	if len(digits) > 1 && digits[0] == '0' {
		if strings.HasPrefix(digits, "0o") || strings.HasPrefix(digits, "0O") {
			// Not a Java prefix.
			return 0, false
		}
		u, err := strconv.ParseUint(digits, 0, 32)
		if err != nil {
			return 0, false
		}
		if sign != "" {
			return -int32(uint32(u)), true
		}
		return int32(uint32(u)), true
	}
	i, err := strconv.ParseInt(sign+digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}

func describe(n parse.Node) string {
	switch n := n.(type) {
	case *parse.VarDecl:
		return "declaration"
	case *parse.Name:
		return "variable " + n.Name
	case *parse.Literal:
		return n.Kind.String() + " literal"
	case *parse.Binary:
		return "binary expression"
	case *parse.Assign:
		return "assignment"
	case *parse.Unsupported:
		return strings.ReplaceAll(n.Kind, "_", " ")
	default:
		return fmt.Sprintf("%T", n)
	}
}
