package stockbook

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

var (
	storeBucket = []byte("stockbook")
	snapshotKey = []byte("snapshot")
)

// Store persists ledger snapshots in a local bbolt key-value database.
// The whole snapshot lives under a single key and is rewritten after every
// mutation; there is no finer-grained durability.
type Store struct {
	db  *bolt.DB
	log zerolog.Logger
}

// OpenStore opens (or creates) the database file at path.
func OpenStore(path string, log zerolog.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storeBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot initialize store %q: %w", path, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the database file.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the persisted snapshot. A missing or unreadable snapshot is
// never fatal: the seed dataset is returned instead, with a warning on the
// unreadable case.
func (s *Store) Load() *Snapshot {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(storeBucket).Get(snapshotKey); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot read stored snapshot, using seed data")
		return SeedSnapshot()
	}
	if raw == nil {
		s.log.Info().Msg("no stored snapshot, starting from seed data")
		return SeedSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warn().Err(err).Msg("stored snapshot is unreadable, using seed data")
		return SeedSnapshot()
	}
	snap.normalize()
	return &snap
}

// Save writes the full snapshot, replacing any previous one.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Put(snapshotKey, data)
	})
	if err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// Clear deletes the persisted snapshot; the next Load starts from seed data.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Delete(snapshotKey)
	})
	if err != nil {
		return fmt.Errorf("cannot clear snapshot: %w", err)
	}
	return nil
}
