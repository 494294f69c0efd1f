package shell

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/sys"
)

// A line reader that shows a prompt when the input is a terminal.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in *os.File, out io.Writer, prompt string) *minEditor {
	if !sys.IsATTY(in) {
		prompt = ""
	}
	return &minEditor{bufio.NewReader(in), out, prompt}
}

// ReadCode reads one line, without the line ending. It returns io.EOF only
// when there is nothing left to read.
func (ed *minEditor) ReadCode() (string, error) {
	io.WriteString(ed.out, ed.prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), err
}
