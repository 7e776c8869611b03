// Package bbolt implements the ports.Storage interface using bbolt
// (embedded B+ tree). Scan records live in a single "scans" bucket keyed
// by a monotonically increasing sequence number, JSON-serialized. Writes
// are transactional — a crash mid-write cannot corrupt committed history.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/keyscan/internal/ports"
)

var bucketScans = []byte("scans")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// scanKey encodes an ID as a big-endian key so byte order equals
// numeric order and cursor iteration walks records chronologically.
func scanKey(id uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], id)
	return k[:]
}

// SaveScan appends a record and returns its assigned ID.
func (s *Store) SaveScan(rec *ports.ScanRecord) (uint64, error) {
	if rec == nil {
		return 0, fmt.Errorf("nil scan record")
	}

	var id uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketScans)
		if err != nil {
			return err
		}
		id, err = b.NextSequence()
		if err != nil {
			return err
		}
		rec.ID = id
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal scan record: %w", err)
		}
		return b.Put(scanKey(id), data)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListScans returns the most recent records, newest first.
func (s *Store) ListScans(limit int) ([]*ports.ScanRecord, error) {
	var recs []*ports.ScanRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketScans)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(recs) >= limit {
				break
			}
			var rec ports.ScanRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal scan %d: %w", binary.BigEndian.Uint64(k), err)
			}
			recs = append(recs, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadScan retrieves one record by ID. Returns nil, nil if absent.
func (s *Store) LoadScan(id uint64) (*ports.ScanRecord, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketScans)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(scanKey(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var rec ports.ScanRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal scan %d: %w", id, err)
	}
	return &rec, nil
}
