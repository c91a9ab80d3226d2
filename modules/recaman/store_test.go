package recaman

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "sequence.json"))

	state := Empty()
	state.Extend(25)
	require.NoError(t, st.Save(state))

	loaded, err := st.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(state.Values(), loaded.Values()); diff != "" {
		t.Fatalf("round trip changed the sequence (-saved +loaded):\n%s", diff)
	}
}

func TestStore_MissingFileYieldsEmptyState(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "sequence.json"))

	state, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, 0, state.Len())
}

func TestStore_FileIsHumanReadableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	st := NewStore(path)

	state, err := NewState([]int{0, 1, 3, 6, 2, 7})
	require.NoError(t, err)
	require.NoError(t, st.Save(state))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[0,1,3,6,2,7]\n", string(data))
}

func TestStore_UnparsableFileIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	require.NoError(t, os.WriteFile(path, []byte("[0, 1, oops"), 0o644))

	_, err := NewStore(path).Load()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestStore_DuplicateValuesAreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	require.NoError(t, os.WriteFile(path, []byte("[0,1,1]"), 0o644))

	_, err := NewStore(path).Load()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestStore_NegativeValuesAreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	require.NoError(t, os.WriteFile(path, []byte("[0,-4]"), 0o644))

	_, err := NewStore(path).Load()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestStore_CorruptLoadLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path).Load()
	require.ErrorIs(t, err, ErrCorrupt)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "not json", string(data))
}

func TestStore_Size(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	st := NewStore(path)

	_, exists, err := st.Size()
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("[0,1,3]"), 0o644))
	size, exists, err := st.Size()
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, int64(7), size)
}

func TestStore_ResetRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.json")
	st := NewStore(path)
	require.NoError(t, os.WriteFile(path, []byte("[0]"), 0o644))

	require.NoError(t, st.Reset())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Resetting an absent store is fine too.
	require.NoError(t, st.Reset())
}
