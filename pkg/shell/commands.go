package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/eval/types"
	"github.com/dumbjshell/dumbjshell/pkg/store/storedefs"
)

type command struct {
	usage string
	help  string
	run   func(s *session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":    {"/help", "show this help", (*session).help},
		"vars":    {"/vars", "list declared variables", (*session).vars},
		"types":   {"/types", "list supported types", (*session).types},
		"history": {"/history [n]", "show the last n commands (default 10)", (*session).history},
		"redo":    {"/redo [prefix]", "evaluate the last command starting with prefix again", (*session).redo},
	}
}

var (
	errNoHistory  = errors.New("command history is not available")
	errBadHistory = errors.New("usage: /history [n], where n is a positive number")
)

const defaultHistoryLen = 10

func (s *session) command(line string) {
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		diag.Complain(s.fds[2], "empty command; try /help")
		return
	}
	cmd, ok := commands[fields[0]]
	if !ok {
		diag.Complainf(s.fds[2], "unknown command /%s; try /help", fields[0])
		return
	}
	if err := cmd.run(s, fields[1:]); err != nil {
		diag.Complain(s.fds[2], err.Error())
	}
}

func (s *session) help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(s.fds[1], "Enter a statement to evaluate it, or exit to quit.")
	fmt.Fprintln(s.fds[1], "Commands:")
	for _, name := range names {
		fmt.Fprintf(s.fds[1], "  %-16s %s\n", commands[name].usage, commands[name].help)
	}
	return nil
}

func (s *session) vars(args []string) error {
	for _, b := range s.ev.Store().Bindings() {
		fmt.Fprintln(s.fds[1], b)
	}
	return nil
}

func (s *session) types(args []string) error {
	for _, name := range types.Names() {
		fmt.Fprintln(s.fds[1], name)
	}
	return nil
}

func (s *session) history(args []string) error {
	n := defaultHistoryLen
	switch len(args) {
	case 0:
	case 1:
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return errBadHistory
		}
	default:
		return errBadHistory
	}
	st := s.cfg.Store
	if st == nil {
		return errNoHistory
	}
	next, err := st.NextCmdSeq()
	if err != nil {
		return err
	}
	cmds, err := st.CmdsWithSeq(next-n, next)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		fmt.Fprintf(s.fds[1], "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return nil
}

func (s *session) redo(args []string) error {
	st := s.cfg.Store
	if st == nil {
		return errNoHistory
	}
	next, err := st.NextCmdSeq()
	if err != nil {
		return err
	}
	cmd, err := st.PrevCmd(next, strings.Join(args, " "))
	if err != nil {
		if err == storedefs.ErrNoMatchingCmd {
			return errors.New("no matching command in history")
		}
		return err
	}
	fmt.Fprintln(s.fds[1], cmd.Text)
	s.record(cmd.Text)
	s.eval(cmd.Text)
	return nil
}
