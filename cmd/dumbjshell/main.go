// Dumbjshell is an interactive evaluator for a small subset of Java:
// variable declarations, assignments, literals, variable reads and binary +
// and -. It can also run scripts, one statement per line, and serve as a
// language server for such scripts.
package main

import (
	"os"

	"github.com/dumbjshell/dumbjshell/pkg/buildinfo"
	"github.com/dumbjshell/dumbjshell/pkg/lsp"
	"github.com/dumbjshell/dumbjshell/pkg/prog"
	"github.com/dumbjshell/dumbjshell/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &shell.Program{})))
}
