// Package store implements the crash-consistent taint store on badger.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const scanSubdir = "scan_progress"

// TaintStore is two physical badger stores under one base directory: the
// main store (tainted:, tx:) and the scan store (tainted_out:,
// scan_progress, satoshi_coinbase_initialized). Separation keeps the large
// outpoint namespace away from the lookup-critical address namespace.
type TaintStore struct {
	main   *badger.DB
	scan   *badger.DB
	logger *zap.Logger
}

// Open opens (or creates) both stores under basePath.
func Open(basePath string, logger *zap.Logger) (*TaintStore, error) {
	main, err := openDB(basePath)
	if err != nil {
		return nil, fmt.Errorf("open main store at %s: %w", basePath, err)
	}
	scan, err := openDB(filepath.Join(basePath, scanSubdir))
	if err != nil {
		_ = main.Close()
		return nil, fmt.Errorf("open scan store at %s: %w", basePath, err)
	}
	logger.Info("taint store opened", zap.String("path", basePath))
	return &TaintStore{main: main, scan: scan, logger: logger}, nil
}

func openDB(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithCompactL0OnClose(true)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupted, err)
	}
	return db, nil
}

// Close flushes and closes both stores.
func (s *TaintStore) Close() error {
	mainErr := s.main.Close()
	scanErr := s.scan.Close()
	if mainErr != nil {
		return mainErr
	}
	if scanErr != nil {
		return scanErr
	}
	s.logger.Info("taint store closed")
	return nil
}

// get reads one key from the given db, decoding JSON into out.
func get(db *badger.DB, key []byte, out interface{}) error {
	return db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

// put writes one key to the given db as JSON.
func put(db *badger.DB, key []byte, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encoded)
	})
}

// scanPrefix walks keys of the given db in order, invoking fn with each
// key/value until the prefix is exhausted or fn returns an error.
func scanPrefix(db *badger.DB, prefix []byte, fn func(key, value []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			if err := item.Value(func(val []byte) error {
				return fn(key, val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
