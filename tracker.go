package stockbook

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Tracker couples the in-memory ledger with its persistent store. It is the
// operation set the presentation layer talks to: mutations are serialized so
// each runs to completion against a consistent snapshot, and the snapshot is
// persisted after every successful mutation.
//
// Persistence is best-effort: a failed write is logged and the in-memory
// state is kept, never rolled back.
type Tracker struct {
	mu     sync.Mutex
	ledger *Ledger
	store  *Store
	log    zerolog.Logger
}

// NewTracker loads the stored snapshot (or the seed data) into a fresh
// ledger and returns the tracker owning it.
func NewTracker(store *Store, log zerolog.Logger) *Tracker {
	l := NewLedger()
	l.Reset(store.Load())
	return &Tracker{ledger: l, store: store, log: log}
}

// Apply runs a command against the ledger and persists the new snapshot on
// success. A rejected command changes nothing, in memory or on disk.
func (t *Tracker) Apply(cmd Command) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ledger.Apply(cmd); err != nil {
		return err
	}
	t.persist()
	return nil
}

// Snapshot returns a point-in-time copy of the ledger for reads.
func (t *Tracker) Snapshot() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Snapshot()
}

// Import replaces the ledger wholesale with the snapshot read from r and
// persists it.
func (t *Tracker) Import(r io.Reader) error {
	snap, err := Import(r)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ledger.Reset(snap)
	t.persist()
	return nil
}

// Export writes the current snapshot to w in the import/export format.
func (t *Tracker) Export(w io.Writer) error {
	return Export(w, t.Snapshot(), time.Now())
}

// Clear deletes the persisted snapshot and resets the ledger to seed data.
func (t *Tracker) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.store.Clear(); err != nil {
		return err
	}
	t.ledger.Reset(SeedSnapshot())
	return nil
}

func (t *Tracker) persist() {
	if err := t.store.Save(t.ledger.Snapshot()); err != nil {
		t.log.Warn().Err(err).Msg("cannot persist snapshot, keeping in-memory state")
	}
}
