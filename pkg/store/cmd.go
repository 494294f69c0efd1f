package store

import (
	"bytes"
	"encoding/binary"

	. "github.com/dumbjshell/dumbjshell/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

// NextCmdSeq returns the sequence number the next added command will get.
func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.view(func(b *bolt.Bucket) error {
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd appends a command to the history and returns its sequence number.
func (s *dbStore) AddCmd(text string) (int, error) {
	var seq uint64
	err := s.update(func(b *bolt.Bucket) error {
		var err error
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Cmd returns the command with the given sequence number.
func (s *dbStore) Cmd(seq int) (string, error) {
	var text string
	err := s.view(func(b *bolt.Bucket) error {
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		text = string(v)
		return nil
	})
	return text, err
}

// CmdsWithSeq returns all commands with sequence numbers in [from, upto). A
// negative from is treated as 0.
func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	if from < 0 {
		from = 0
	}
	var cmds []Cmd
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil; k, v = c.Next() {
			seq := unmarshalSeq(k)
			if seq >= uint64(upto) {
				break
			}
			cmds = append(cmds, Cmd{Text: string(v), Seq: int(seq)})
		}
		return nil
	})
	return cmds, err
}

// PrevCmd finds the last command before the given sequence number (exclusive)
// that starts with the given prefix.
func (s *dbStore) PrevCmd(upto int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		k, v := c.Seek(marshalSeq(uint64(upto)))
		if k == nil {
			// Everything is before upto.
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}
		for ; k != nil; k, v = c.Prev() {
			if bytes.HasPrefix(v, []byte(prefix)) {
				cmd = Cmd{Text: string(v), Seq: int(unmarshalSeq(k))}
				return nil
			}
		}
		return ErrNoMatchingCmd
	})
	return cmd, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
