package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dumbjshell/dumbjshell/pkg/diag"
	"github.com/dumbjshell/dumbjshell/pkg/eval"
	"github.com/dumbjshell/dumbjshell/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd       bool
	ParseOnly bool
	PrintAST  bool
	JSON      bool
}

// Runs a script, where each non-blank line is one statement. It stops at the
// first error and returns the exit status.
func script(ev *eval.Evaler, fds [3]*os.File, arg string, cfg *scriptCfg) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg
	} else {
		var err error
		name, err = filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot get full path of script %q: %v\n", arg, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	if cfg.ParseOnly {
		parseErrs := parseLines(name, code)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(parseErrs))
		} else {
			for _, err := range parseErrs {
				diag.ShowError(fds[2], err)
			}
		}
		if len(parseErrs) > 0 {
			return 2
		}
		return 0
	}

	for _, line := range parse.SplitLines(code) {
		src := parse.Source{Name: name, Code: line.Text}
		var err error
		if cfg.PrintAST {
			var n parse.Node
			n, err = parse.Parse(src)
			if err == nil {
				parse.Pprint(fds[1], n)
			}
		} else {
			var out string
			out, err = evalCode(ev, src)
			if err == nil {
				fmt.Fprintf(fds[1], "==> %s\n", out)
			}
		}
		if err != nil {
			diag.ShowError(fds[2], relocate(err, name, code, line.Start))
			return 2
		}
	}
	return 0
}

// Parses each line of the code, and returns all the parse errors.
func parseLines(name, code string) []*diag.Error {
	var errs []*diag.Error
	for _, line := range parse.SplitLines(code) {
		_, err := parse.Parse(parse.Source{Name: name, Code: line.Text})
		if err != nil {
			errs = append(errs, relocate(err, name, code, line.Start).(*diag.Error))
		}
	}
	return errs
}

// Converts an error about one line into one about the whole code.
func relocate(err error, name, code string, offset int) error {
	var e *diag.Error
	if !errors.As(err, &e) {
		return err
	}
	return &diag.Error{Type: e.Type, Message: e.Message,
		Context: *diag.NewContext(name, code, e.Range().Shift(offset))}
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts parse errors into JSON.
func errorsToJSON(errs []*diag.Error) []byte {
	converted := []errorInJSON{}
	for _, e := range errs {
		converted = append(converted,
			errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
	}
	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
