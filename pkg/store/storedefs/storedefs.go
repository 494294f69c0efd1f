// Package storedefs contains definitions of the history store API.
//
// It is a separate package so that packages that only use the store API do not
// need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a Cmd or PrevCmd query completes
// with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the history store.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	PrevCmd(upto int, prefix string) (Cmd, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
