package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/keyscan/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "keyscan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(source string) *ports.ScanRecord {
	return &ports.ScanRecord{
		When:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:       source,
		PatternCount: 3,
		MatchCount:   2,
		Matches: []ports.Match{
			{Line: 1, Column: 2, Pattern: "she", Context: "shers", PatternID: 1},
			{Line: 1, Column: 3, Pattern: "he", Context: "hers", PatternID: 0},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	id, err := s.SaveScan(sampleRecord("moby-dick.txt"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	got, err := s.LoadScan(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "moby-dick.txt", got.Source)
	assert.Equal(t, id, got.ID)
	assert.Len(t, got.Matches, 2)
	assert.Equal(t, "she", got.Matches[0].Pattern)
}

func TestStore_LoadMissing(t *testing.T) {
	s := newTestStore(t)
	got, err := s.LoadScan(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	for _, src := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := s.SaveScan(sampleRecord(src))
		require.NoError(t, err)
	}

	recs, err := s.ListScans(0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "c.txt", recs[0].Source)
	assert.Equal(t, "a.txt", recs[2].Source)

	recs, err = s.ListScans(2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "c.txt", recs[0].Source)
	assert.Equal(t, "b.txt", recs[1].Source)
}

func TestStore_ListEmpty(t *testing.T) {
	s := newTestStore(t)
	recs, err := s.ListScans(10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_SaveNil(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SaveScan(nil)
	assert.Error(t, err)
}
