package parse

import (
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	sitter "github.com/smacker/go-tree-sitter"
)

type converter struct {
	text []byte
	// Length of the source code, before a semicolon is appended.
	limit int
}

func (c converter) ranging(n *sitter.Node) diag.Ranging {
	r := rangingOf(n)
	if r.To > c.limit {
		r.To = c.limit
	}
	if r.From > r.To {
		r.From = r.To
	}
	return r
}

func (c converter) content(n *sitter.Node) string {
	return n.Content(c.text)
}

func (c converter) statement(n *sitter.Node) Node {
	switch n.Type() {
	case "local_variable_declaration":
		return c.varDecl(n)
	case "expression_statement":
		if n.NamedChildCount() == 0 {
			return &Unsupported{c.ranging(n), n.Type()}
		}
		return c.expression(n.NamedChild(0))
	default:
		return &Unsupported{c.ranging(n), n.Type()}
	}
}

func (c converter) varDecl(n *sitter.Node) Node {
	typ := n.ChildByFieldName("type")
	decl := n.ChildByFieldName("declarator")
	if typ == nil || decl == nil || decl.ChildByFieldName("dimensions") != nil {
		return &Unsupported{c.ranging(n), n.Type()}
	}
	d := &VarDecl{Ranging: c.ranging(n), Type: c.content(typ)}
	if name := decl.ChildByFieldName("name"); name != nil {
		d.Name = c.content(name)
	}
	if value := decl.ChildByFieldName("value"); value != nil {
		d.Init = c.expression(value)
	}
	return d
}

func (c converter) expression(n *sitter.Node) Node {
	switch n.Type() {
	case "parenthesized_expression":
		if n.NamedChildCount() == 1 {
			return c.expression(n.NamedChild(0))
		}
	case "identifier":
		return &Name{c.ranging(n), c.content(n)}
	case "decimal_integer_literal", "hex_integer_literal",
		"octal_integer_literal", "binary_integer_literal",
		"decimal_floating_point_literal", "hex_floating_point_literal":
		return c.number(n, "")
	case "string_literal", "text_block":
		return c.string(n)
	case "character_literal":
		return &Literal{c.ranging(n), CharLiteral, c.content(n)}
	case "true", "false":
		return &Literal{c.ranging(n), BoolLiteral, c.content(n)}
	case "null_literal":
		return &Literal{c.ranging(n), NullLiteral, c.content(n)}
	case "unary_expression":
		op, operand := n.ChildByFieldName("operator"), n.ChildByFieldName("operand")
		if op != nil && operand != nil && c.content(op) == "-" && isNumber(operand) {
			lit := c.number(operand, "-")
			lit.Ranging = c.ranging(n)
			return lit
		}
	case "binary_expression":
		left, op, right := c.fields(n)
		if left != nil && op != nil && right != nil {
			return &Binary{c.ranging(n), c.expression(left), c.content(op), c.expression(right)}
		}
	case "assignment_expression":
		left, op, right := c.fields(n)
		if left != nil && op != nil && right != nil {
			return &Assign{c.ranging(n), c.expression(left), c.content(op), c.expression(right)}
		}
	}
	return &Unsupported{c.ranging(n), n.Type()}
}

func (c converter) fields(n *sitter.Node) (left, op, right *sitter.Node) {
	return n.ChildByFieldName("left"), n.ChildByFieldName("operator"), n.ChildByFieldName("right")
}

func isNumber(n *sitter.Node) bool {
	return strings.HasSuffix(n.Type(), "_integer_literal") ||
		strings.HasSuffix(n.Type(), "_floating_point_literal")
}

func (c converter) number(n *sitter.Node, sign string) *Literal {
	text := c.content(n)
	kind := IntLiteral
	switch {
	case strings.HasSuffix(n.Type(), "_floating_point_literal"):
		kind = FloatLiteral
	case strings.HasSuffix(text, "l"), strings.HasSuffix(text, "L"):
		kind = LongLiteral
	}
	return &Literal{c.ranging(n), kind, sign + text}
}

func (c converter) string(n *sitter.Node) Node {
	text := c.content(n)
	if n.Type() == "text_block" || strings.HasPrefix(text, `"""`) {
		return &Literal{c.ranging(n), TextBlockLiteral, text}
	}
	s := strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)
	return &Literal{c.ranging(n), StringLiteral, Unescape(s)}
}
