package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/eval"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
	"github.com/dumbjshell/dumbjshell/pkg/store/storedefs"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Config Config
	// Where commands are recorded. If nil, history is not available.
	Store storedefs.Store
	// Print the parsed form of statements instead of evaluating them.
	PrintAST bool
}

type session struct {
	ev     *eval.Evaler
	fds    [3]*os.File
	cfg    *InteractConfig
	cmdNum int
}

// Interact runs an interactive shell session, until the input is exhausted or
// "exit" is entered.
func Interact(ev *eval.Evaler, fds [3]*os.File, cfg *InteractConfig) {
	s := &session{ev: ev, fds: fds, cfg: cfg}
	s.preload()

	ed := newMinEditor(fds[0], fds[1], cfg.Config.Prompt)
	for {
		line, err := ed.ReadCode()
		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Cannot read input:", err)
			break
		}

		code := strings.TrimSpace(line)
		switch {
		case code == "":
			continue
		case strings.EqualFold(code, "exit"):
			fmt.Fprintln(fds[1], "Exiting...")
			return
		case strings.HasPrefix(code, "/"):
			s.command(code)
		default:
			s.record(code)
			s.eval(code)
		}
	}
}

func (s *session) preload() {
	for i, code := range s.cfg.Config.Preload {
		src := parse.Source{Name: fmt.Sprintf("[preload %d]", i+1), Code: code}
		if _, err := evalCode(s.ev, src); err != nil {
			diag.ShowError(s.fds[2], err)
		}
	}
}

func (s *session) eval(code string) {
	s.cmdNum++
	src := parse.Source{Name: fmt.Sprintf("[tty %d]", s.cmdNum), Code: code}
	if s.cfg.PrintAST {
		n, err := parse.Parse(src)
		if err != nil {
			diag.ShowError(s.fds[2], err)
			return
		}
		parse.Pprint(s.fds[1], n)
		return
	}
	out, err := evalCode(s.ev, src)
	if err != nil {
		diag.ShowError(s.fds[2], err)
		return
	}
	fmt.Fprintf(s.fds[1], "%s%s\n", s.cfg.Config.ResultPrefix, out)
}

func (s *session) record(code string) {
	if s.cfg.Store == nil {
		return
	}
	if _, err := s.cfg.Store.AddCmd(code); err != nil {
		fmt.Fprintln(s.fds[2], "Warning: cannot add command to history:", err)
		logger.Println("disabling history after error:", err)
		s.cfg.Store = nil
	}
}
