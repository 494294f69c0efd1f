package parse

import (
	"io"

	"github.com/alecthomas/repr"
)

// Pprint writes a readable dump of a node and all its children to w.
func Pprint(w io.Writer, n Node) {
	repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(n)
}
