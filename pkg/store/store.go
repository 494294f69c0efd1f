// Package store implements the command history store, backed by a bbolt
// database.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dumbjshell/dumbjshell/pkg/logutil"
	"github.com/dumbjshell/dumbjshell/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

// DBStore is the permanent storage backend for the shell.
type DBStore interface {
	storedefs.Store
	Close() error
}

const bucketCmd = "cmd"

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file, creating the file and its
// directory when needed.
func NewStore(dbname string) (DBStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbname), 0700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")

	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}

func (s *dbStore) view(f func(b *bolt.Bucket) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucketCmd)))
	})
}

func (s *dbStore) update(f func(b *bolt.Bucket) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucketCmd)))
	})
}
