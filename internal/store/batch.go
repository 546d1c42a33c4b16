package store

import (
	"encoding/json"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Batch stages writes against one physical store. Commit applies every
// staged write or none; a failed batch must be discarded and the block
// retried from scratch.
type Batch struct {
	wb      *badger.WriteBatch
	ops     int
	started time.Time
}

// NewMainBatch stages writes against the main store (tainted:, tx:).
func (s *TaintStore) NewMainBatch() *Batch {
	return s.newBatch(s.main)
}

// NewScanBatch stages writes against the scan store (tainted_out:,
// scan_progress).
func (s *TaintStore) NewScanBatch() *Batch {
	return s.newBatch(s.scan)
}

func (s *TaintStore) newBatch(db *badger.DB) *Batch {
	return &Batch{
		wb:      db.NewWriteBatch(),
		started: time.Now(),
	}
}

// Len returns the number of staged operations.
func (b *Batch) Len() int {
	return b.ops
}

// Age returns how long ago the batch was opened.
func (b *Batch) Age() time.Duration {
	return time.Since(b.started)
}

// Set stages one JSON-encoded write.
func (b *Batch) Set(key []byte, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := b.wb.Set(key, encoded); err != nil {
		return err
	}
	b.ops++
	return nil
}

// Commit durably applies every staged write.
func (b *Batch) Commit() error {
	return b.wb.Flush()
}

// Discard abandons the staged writes.
func (b *Batch) Discard() {
	b.wb.Cancel()
}
