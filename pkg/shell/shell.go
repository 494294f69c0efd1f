// Package shell is the entry point for the terminal interface of dumbjshell.
package shell

import (
	"fmt"
	"os"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/eval"
	"github.com/dumbjshell/dumbjshell/pkg/logutil"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
	"github.com/dumbjshell/dumbjshell/pkg/prog"
	"github.com/dumbjshell/dumbjshell/pkg/store"
	"github.com/dumbjshell/dumbjshell/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It is always run when the subprograms
// before it in a composite program pass.
type Program struct {
	codeInArg bool
	parseOnly bool
	printAST  bool
	noRC      bool
	rc        string
	db        string
	noHistory bool
	json      *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take first argument as code to execute")
	fs.BoolVar(&p.parseOnly, "parseonly", false, "parse the script but do not evaluate it")
	fs.BoolVar(&p.printAST, "print-ast", false, "print the parsed form of each statement instead of evaluating it")
	fs.BoolVar(&p.noRC, "norc", false, "don't read the rc file")
	fs.StringVar(&p.rc, "rc", "", "path to the rc file")
	fs.StringVar(&p.db, "db", "", "path to the history database")
	fs.BoolVar(&p.noHistory, "nohistory", false, "don't read or write the command history")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if p.codeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires code as its argument")
	}
	if len(args) > 1 {
		return prog.BadUsage("only one script can be run")
	}

	ev := eval.NewEvaler()
	if len(args) == 1 {
		exit := script(ev, fds, args[0], &scriptCfg{
			Cmd: p.codeInArg, ParseOnly: p.parseOnly, PrintAST: p.printAST, JSON: *p.json})
		return prog.Exit(exit)
	}

	cfg := defaultConfig()
	if !p.noRC {
		cfg = readRC(fds[2], p.rc)
	}
	var st storedefs.Store
	if !p.noHistory && cfg.History {
		dbStore, err := openStore(p.db)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			fmt.Fprintln(fds[2], "Command history will not be available.")
		} else {
			defer dbStore.Close()
			st = dbStore
		}
	}

	Interact(ev, fds, &InteractConfig{Config: cfg, Store: st, PrintAST: p.printAST})
	return nil
}

func readRC(stderr *os.File, path string) Config {
	if path == "" {
		var err error
		path, err = rcPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return defaultConfig()
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	return cfg
}

func openStore(path string) (store.DBStore, error) {
	if path == "" {
		var err error
		path, err = dbPath()
		if err != nil {
			return nil, err
		}
	}
	logger.Println("opening history database", path)
	return store.NewStore(path)
}

// Type of errors from evaluating code in the shell.
const evalErrorType = "error"

// Parses and evaluates the source. Evaluation errors are returned as
// *diag.Error values pointing at the statement.
func evalCode(ev *eval.Evaler, src parse.Source) (string, error) {
	n, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	out, err := ev.Eval(n)
	if err != nil {
		return "", &diag.Error{Type: evalErrorType, Message: err.Error(),
			Context: *diag.NewContext(src.Name, src.Code, n)}
	}
	return out, nil
}
