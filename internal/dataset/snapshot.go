package dataset

import (
	"sync/atomic"
	"time"

	"homescout/internal/model"
)

// Snapshot is an immutable view of the joined listing table. Once built it is
// never mutated; concurrent readers need no locking.
type Snapshot struct {
	listings []model.Listing
	builtAt  time.Time
}

// NewSnapshot wraps a joined listing table. The caller must not modify the
// slice afterwards.
func NewSnapshot(listings []model.Listing) *Snapshot {
	return &Snapshot{listings: listings, builtAt: time.Now()}
}

// Listings returns the joined table in original order.
func (s *Snapshot) Listings() []model.Listing { return s.listings }

// Len returns the number of joined rows.
func (s *Snapshot) Len() int { return len(s.listings) }

// BuiltAt returns when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Store owns the current snapshot. A refresh builds a whole new Snapshot from
// disk and swaps the pointer atomically; requests keep reading the snapshot
// they captured.
type Store struct {
	dir     string
	files   SourceFiles
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store reading from dir. No data is loaded until Reload.
func NewStore(dir string, files SourceFiles) *Store {
	return &Store{dir: dir, files: files}
}

// Load returns the current snapshot, or nil before the first Reload.
func (s *Store) Load() *Snapshot {
	return s.current.Load()
}

// Reload rebuilds the joined table from the source files and swaps it in. On
// failure the previous snapshot stays live.
func (s *Store) Reload() (*Snapshot, error) {
	tables, err := LoadTables(s.dir, s.files)
	if err != nil {
		return nil, err
	}
	listings, err := BuildListings(tables)
	if err != nil {
		return nil, err
	}
	snap := NewSnapshot(listings)
	s.current.Store(snap)
	return snap, nil
}
