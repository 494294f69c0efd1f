// Package progtest contains utilities for testing [prog.Program] instances.
//
// Test cases are constructed with ThatDumbjshell, which takes the
// command-line arguments, followed by method calls that describe the input and
// the expected outcome:
//
//	Test(t, &shell.Program{},
//	    ThatDumbjshell("-c", "2 + 3").WritesStdout("==> 5\n"),
//	    ThatDumbjshell().WithStdin("x\n").ExitsWith(0))
package progtest

import (
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/dumbjshell/dumbjshell/pkg/must"
	"github.com/dumbjshell/dumbjshell/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	tty   bool
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strconv.Quote(o.content)
	}
	return strconv.Quote(o.content)
}

// ThatDumbjshell returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "dumbjshell -c 1" writes "==> 1\n"
// reads:
//
//	ThatDumbjshell("-c", "1").WritesStdout("==> 1\n")
func ThatDumbjshell(args ...string) Case {
	return Case{args: append([]string{"dumbjshell"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// InTTY returns an altered Case whose stdin is a pseudo-terminal that
// receives the input given by WithStdin. The test is skipped if a
// pseudo-terminal cannot be opened.
func (c Case) InTTY() Case {
	c.tty = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatDumbjshell("-c", "").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(exit int) Case {
	c.want.exit = exit
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c)
			if r.exit != c.want.exit {
				t.Errorf("got exit %v, want %v", r.exit, c.want.exit)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// status and the output written to stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r := runWithStdin(p, stdinPipe(stdin), append([]string{"dumbjshell"}, args...))
	return r.exit, r.stdout.content, r.stderr.content
}

func run(t *testing.T, p prog.Program, c Case) result {
	if !c.tty {
		return runWithStdin(p, stdinPipe(c.stdin), c.args)
	}
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	go func() {
		// ^D at the start of a line is EOF for a terminal in canonical mode.
		ptmx.WriteString(c.stdin + "\x04")
		// Discard the echo.
		io.Copy(io.Discard, ptmx)
	}()
	return runWithStdin(p, tty, c.args)
}

func stdinPipe(s string) *os.File {
	r, w := must.Pipe()
	go func() {
		w.WriteString(s)
		w.Close()
	}()
	return r
}

func runWithStdin(p prog.Program, stdin *os.File, args []string) result {
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain the pipes concurrently, so that a program writing a lot of output
	// does not block.
	stdoutCh, stderrCh := readAllAsync(r1), readAllAsync(r2)
	exit := prog.Run([3]*os.File{stdin, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	if stdin != nil {
		stdin.Close()
	}
	return result{exit, output{content: <-stdoutCh}, output{content: <-stderrCh}}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
