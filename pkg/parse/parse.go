// Package parse turns one line of Java-like source into a Node.
//
// Parsing is done with the tree-sitter Java grammar. The concrete syntax tree
// is then converted to the small set of nodes the evaluator knows about; any
// syntactically valid construct without a node of its own becomes an
// *Unsupported node, so that it can be reported by the evaluator.
package parse

import (
	"strings"
	"unicode"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// ErrorType is the Type of all errors returned by Parse.
const ErrorType = "parse error"

var language = java.GetLanguage()

// Parse parses the given source as one statement. A semicolon is appended if
// the code does not end with one, so that a bare expression parses as an
// expression statement. The returned error always has type *diag.Error if it
// is not nil.
func Parse(src Source) (Node, error) {
	if strings.TrimSpace(src.Code) == "" {
		return nil, newError(src, "empty input", diag.Ranging{From: 0, To: len(src.Code)})
	}
	text := src.Code
	if !strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), ";") {
		text += "\n;"
	}

	parser := sitter.NewParser()
	parser.SetLanguage(language)
	tree := parser.Parse(nil, []byte(text))
	root := tree.RootNode()

	if root.HasError() {
		if bad := firstError(root); bad != nil {
			return nil, newError(src, describeError(bad), rangingOf(bad))
		}
		return nil, newError(src, "syntax error", diag.Ranging{From: 0, To: len(src.Code)})
	}

	var stmts []*sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if !isComment(child) {
			stmts = append(stmts, child)
		}
	}
	switch len(stmts) {
	case 0:
		return nil, newError(src, "empty input", diag.Ranging{From: 0, To: len(src.Code)})
	case 1:
		c := converter{[]byte(text), len(src.Code)}
		return c.statement(stmts[0]), nil
	default:
		return nil, newError(src, "more than one statement", rangingOf(stmts[1]))
	}
}

func newError(src Source, msg string, r diag.Ranging) *diag.Error {
	// Positions past the end can only point into the appended semicolon.
	if r.From > len(src.Code) {
		r.From = len(src.Code)
	}
	if r.To > len(src.Code) {
		r.To = len(src.Code)
	}
	return &diag.Error{Type: ErrorType, Message: msg,
		Context: *diag.NewContext(src.Name, src.Code, r)}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func describeError(n *sitter.Node) string {
	if n.IsMissing() {
		return "missing " + n.Type()
	}
	return "syntax error"
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "comment", "line_comment", "block_comment":
		return true
	}
	return false
}

func rangingOf(n *sitter.Node) diag.Ranging {
	return diag.Ranging{From: int(n.StartByte()), To: int(n.EndByte())}
}
