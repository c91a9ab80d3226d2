package recaman

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/progdeck/progdeck/internal/fsutil"
)

// ErrCorrupt marks a store file that exists but cannot be read back into a
// valid sequence. The engine never repairs or deletes such a file; manual
// deletion is the documented recovery path.
var ErrCorrupt = errors.New("sequence store is corrupt")

// Store reads and writes the sequence's single on-disk file. The format is
// a plain JSON array of the ordered terms, human-readable and rewritten
// whole on every persisting run.
type Store struct {
	path string
}

// NewStore creates a Store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (st *Store) Path() string {
	return st.path
}

// Load reads the store into a SequenceState. A missing file yields the
// empty (never-run) state. A file that fails to parse, or that parses into
// a sequence violating the uniqueness or non-negativity invariants, yields
// ErrCorrupt.
func (st *Store) Load() (*SequenceState, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", st.path, err)
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s does not parse as a JSON integer array: %v", ErrCorrupt, st.path, err)
	}
	state, err := NewState(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, st.path, err)
	}
	return state, nil
}

// Save persists the full ordered sequence, replacing the store atomically.
// On failure the previous contents of the store remain intact.
func (st *Store) Save(s *SequenceState) error {
	data, err := json.Marshal(s.Values())
	if err != nil {
		return fmt.Errorf("encoding sequence: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFileAtomic(st.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", st.path, err)
	}
	return nil
}

// Size reports the on-disk size of the store and whether it exists.
func (st *Store) Size() (int64, bool, error) {
	info, err := os.Stat(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("stat store %s: %w", st.path, err)
	}
	return info.Size(), true, nil
}

// Reset discards the store file. Only the health-check prompt calls this,
// and only after the user confirmed.
func (st *Store) Reset() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing store %s: %w", st.path, err)
	}
	return nil
}
