package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sync"

	"go.uber.org/zap"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/logger"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/storage"
)

// DefaultKey is the key the whole history blob is stored under.
const DefaultKey = "@calculator_history"

var (
	// ErrCorrupt means the persisted blob could not be decoded. The store
	// starts empty and the raw blob is kept under "<key>.corrupt".
	ErrCorrupt = errors.New("history data is corrupt")
	// ErrPersistence wraps every read or write failure against the KV store.
	ErrPersistence = errors.New("history persistence failed")
	// ErrNoEntry is returned for an index outside the history.
	ErrNoEntry = errors.New("no such history entry")
)

// Snapshot is an immutable copy of the history at one point in time,
// ready to be written by Save.
type Snapshot struct {
	gen     uint64
	entries []Entry
}

// Entries returns the snapshot's entries, newest first.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Store manages the ordered history list and its persistence.
//
// The entries slice is copy-on-write: every mutation installs a new slice,
// so snapshots and views taken earlier never see later changes.
type Store struct {
	kv  storage.KV
	key string

	mu      sync.RWMutex
	entries []Entry
	gen     uint64
	// loadedGen is the generation installed by the last Load.
	loadedGen uint64

	saveMu   sync.Mutex
	savedGen uint64
}

// NewStore creates an empty history store persisted under key in kv.
// An empty key means DefaultKey.
func NewStore(kv storage.KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		kv:      kv,
		key:     key,
		entries: []Entry{},
	}
}

// Load reads history from the KV store, replacing what is in memory.
// A missing key leaves the history empty without error. A blob that does not
// decode also leaves the history empty, and the returned error wraps
// ErrCorrupt so callers can surface it as a warning.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.replace([]Entry{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: load: %w", ErrPersistence, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.replace([]Entry{})
		logger.L().Warn("history blob is corrupt, starting empty",
			zap.String("key", s.key), zap.Error(err))
		if setErr := s.kv.Set(ctx, s.key+".corrupt", data); setErr != nil {
			logger.L().Error("failed to keep corrupt history blob",
				zap.String("key", s.key), zap.Error(setErr))
		}
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if entries == nil {
		entries = []Entry{}
	}

	s.replace(entries)
	logger.Debug("loaded %d history entries", len(entries))
	return nil
}

func (s *Store) replace(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.gen++
	s.loadedGen = s.gen
}

// Append prepends e and returns the snapshot to persist.
func (s *Store) Append(e Entry) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, e)
	next = append(next, s.entries...)
	s.entries = next
	s.gen++
	return Snapshot{gen: s.gen, entries: next}
}

// SetNote sets or replaces the note of the entry at master index idx.
func (s *Store) SetNote(idx int, note string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.entries) {
		return Snapshot{}, fmt.Errorf("%w: index %d", ErrNoEntry, idx)
	}

	next := append([]Entry(nil), s.entries...)
	next[idx].Note = note
	s.entries = next
	s.gen++
	return Snapshot{gen: s.gen, entries: next}, nil
}

// Snapshot returns the current history for persisting.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{gen: s.gen, entries: s.entries}
}

// Save writes snap as the whole history blob. Saves are serialized, and a
// snapshot older than one already written is skipped, so writes completing
// out of order can never roll the stored history back.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if snap.gen != 0 && snap.gen <= s.savedGen {
		logger.Debug("skipping stale history snapshot %d (saved %d)", snap.gen, s.savedGen)
		return nil
	}

	entries := snap.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}

	s.savedGen = snap.gen
	return nil
}

// Flush saves the current history if it changed since Load and has not
// been written yet. A history that failed to load is never written back
// unless something was added to it.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	snap := Snapshot{gen: s.gen, entries: s.entries}
	unchanged := s.gen == s.loadedGen
	s.mu.RUnlock()

	if unchanged {
		return nil
	}
	return s.Save(ctx, snap)
}

// List returns a copy of all entries, newest first.
func (s *Store) List() []Entry {
	return s.Snapshot().Entries()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Get returns an entry by master index.
func (s *Store) Get(idx int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Filter returns a view of the entries recorded on day. An empty day means
// every entry.
func (s *Store) Filter(day string) View {
	return View{store: s, day: day}
}

// View is a read-only projection of a Store. It holds no entries itself:
// every traversal reads the store's current list, so it is restartable and
// never drifts from the master list.
type View struct {
	store *Store
	day   string
}

// Day returns the filter key, empty for an unfiltered view.
func (v View) Day() string {
	return v.day
}

func (v View) match(e Entry) bool {
	return v.day == "" || e.Date == v.day
}

// All yields master index and entry for every matching record, newest first.
func (v View) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if v.store == nil {
			return
		}
		for i, e := range v.store.Snapshot().entries {
			if !v.match(e) {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns the matching records as a new slice.
func (v View) Entries() []Entry {
	out := []Entry{}
	for _, e := range v.All() {
		out = append(out, e)
	}
	return out
}

// Len returns the number of matching records.
func (v View) Len() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// At maps view position pos to its master index and entry.
func (v View) At(pos int) (int, Entry, bool) {
	if pos < 0 {
		return -1, Entry{}, false
	}
	n := 0
	for i, e := range v.All() {
		if n == pos {
			return i, e, true
		}
		n++
	}
	return -1, Entry{}, false
}
