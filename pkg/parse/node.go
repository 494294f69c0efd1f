package parse

import "github.com/dumbjshell/dumbjshell/pkg/diag"

// Node is a parsed statement or expression.
type Node interface {
	diag.Ranger
	isNode()
}

// VarDecl is a local variable declaration, like "int x = 5". Only the first
// declarator is kept. Init is nil when the declarator has no initializer.
type VarDecl struct {
	diag.Ranging
	Type string
	Name string
	Init Node
}

// Name is a reference to a variable.
type Name struct {
	diag.Ranging
	Name string
}

// Literal is a literal value. For string literals, Text is the unescaped
// content; for other literals it is the source text, including a leading "-"
// if a unary minus has been folded into the literal.
type Literal struct {
	diag.Ranging
	Kind LiteralKind
	Text string
}

// Binary is a binary operation, like "a + b".
type Binary struct {
	diag.Ranging
	Left  Node
	Op    string
	Right Node
}

// Assign is an assignment, like "x = 10" or "x += 1".
type Assign struct {
	diag.Ranging
	Target Node
	Op     string
	Value  Node
}

// Unsupported is any construct that has no node type of its own. Kind is the
// name of the grammar rule, like "if_statement" or "method_invocation".
type Unsupported struct {
	diag.Ranging
	Kind string
}

func (*VarDecl) isNode()     {}
func (*Name) isNode()        {}
func (*Literal) isNode()     {}
func (*Binary) isNode()      {}
func (*Assign) isNode()      {}
func (*Unsupported) isNode() {}

// LiteralKind classifies literals.
type LiteralKind int

// Possible values of LiteralKind.
const (
	IntLiteral LiteralKind = iota
	LongLiteral
	FloatLiteral
	BoolLiteral
	StringLiteral
	TextBlockLiteral
	CharLiteral
	NullLiteral
)

var literalKindNames = [...]string{
	IntLiteral:       "int",
	LongLiteral:      "long",
	FloatLiteral:     "floating point",
	BoolLiteral:      "boolean",
	StringLiteral:    "string",
	TextBlockLiteral: "text block",
	CharLiteral:      "char",
	NullLiteral:      "null",
}

func (k LiteralKind) String() string {
	if 0 <= k && int(k) < len(literalKindNames) {
		return literalKindNames[k]
	}
	return "unknown"
}
