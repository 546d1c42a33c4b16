package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
)

// GetTaint returns the TaintRecord of an address, ErrNotFound if none.
func (s *TaintStore) GetTaint(address string) (*model.TaintRecord, error) {
	var rec model.TaintRecord
	if err := get(s.main, TaintKey(address), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// PutTaint upserts the TaintRecord of an address. A stored seed record is
// never overwritten by a non-seed taint.
func (s *TaintStore) PutTaint(rec model.TaintRecord) error {
	existing, err := s.GetTaint(rec.Address)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil && existing.IsSeed() && !rec.IsSeed() {
		return fmt.Errorf("address %s is a seed: %w", rec.Address, ErrInvariant)
	}
	return put(s.main, TaintKey(rec.Address), rec)
}

// StageTaint stages a TaintRecord upsert into a main-store batch. The seed
// guard is the caller's responsibility on this path: the scanner reads the
// existing record before staging.
func (s *TaintStore) StageTaint(b *Batch, rec model.TaintRecord) error {
	return b.Set(TaintKey(rec.Address), rec)
}

// GetOutpoint returns the taint mark of (txid, vout), ErrNotFound if none.
func (s *TaintStore) GetOutpoint(txid string, vout uint32) (*model.OutpointRecord, error) {
	var rec model.OutpointRecord
	if err := get(s.scan, OutpointKey(txid, vout), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// PutOutpoint writes the taint mark of an outpoint. Degrees are monotone:
// a write that would raise a stored degree is rejected.
func (s *TaintStore) PutOutpoint(txid string, vout uint32, rec model.OutpointRecord) error {
	existing, err := s.GetOutpoint(txid, vout)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil && rec.Degree > existing.Degree {
		return fmt.Errorf("outpoint %s:%d degree %d -> %d: %w", txid, vout, existing.Degree, rec.Degree, ErrInvariant)
	}
	return put(s.scan, OutpointKey(txid, vout), rec)
}

// StageOutpoint stages an outpoint taint mark into a scan-store batch.
func (s *TaintStore) StageOutpoint(b *Batch, txid string, vout uint32, rec model.OutpointRecord) error {
	return b.Set(OutpointKey(txid, vout), rec)
}

// GetTx returns a cached compact transaction record, ErrNotFound if none.
func (s *TaintStore) GetTx(txid string) (*model.TxRecord, error) {
	var rec model.TxRecord
	if err := get(s.main, TxKey(txid), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// PutTx caches a compact transaction record. Best-effort, no invariant.
func (s *TaintStore) PutTx(rec model.TxRecord) error {
	return put(s.main, TxKey(rec.TxID), rec)
}

// GetProgress returns the last fully persisted block height.
func (s *TaintStore) GetProgress() (*model.ScanProgress, error) {
	var rec model.ScanProgress
	if err := get(s.scan, []byte(progressKey), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetProgress publishes the last fully persisted block height. Progress
// never moves backward.
func (s *TaintStore) SetProgress(rec model.ScanProgress) error {
	existing, err := s.GetProgress()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil && rec.LastBlock < existing.LastBlock {
		return fmt.Errorf("scan progress %d -> %d: %w", existing.LastBlock, rec.LastBlock, ErrInvariant)
	}
	return put(s.scan, []byte(progressKey), rec)
}

// GetSeedMarker returns the one-shot seed materialization marker.
func (s *TaintStore) GetSeedMarker() (*model.SeedMarker, error) {
	var rec model.SeedMarker
	if err := get(s.scan, []byte(seedMarkerKey), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetSeedMarker flips the one-shot seed materialization marker.
func (s *TaintStore) SetSeedMarker(rec model.SeedMarker) error {
	return put(s.scan, []byte(seedMarkerKey), rec)
}

// ScanTainted walks every stored TaintRecord in address order.
func (s *TaintStore) ScanTainted(fn func(rec model.TaintRecord) error) error {
	return scanPrefix(s.main, []byte(taintPrefix), func(key, value []byte) error {
		var rec model.TaintRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return fn(rec)
	})
}
