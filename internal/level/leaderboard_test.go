package level

import (
	"path/filepath"
	"testing"

	"levelbot/internal/storage"
	st "levelbot/internal/storagetypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardStorage(t *testing.T) *storage.Storage {
	t.Helper()
	s, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLeaderboardOrdering(t *testing.T) {
	s := newBoardStorage(t)
	require.NoError(t, s.SetUserProgress("g1", "alice", st.UserProgress{TotalXP: 300}))
	require.NoError(t, s.SetUserProgress("g1", "bob", st.UserProgress{TotalXP: 500}))
	require.NoError(t, s.SetUserProgress("g1", "carol", st.UserProgress{TotalXP: 100}))
	require.NoError(t, s.SetUserProgress("g1", "dave", st.UserProgress{TotalXP: 0}))

	entries, err := Leaderboard(s, "g1")
	require.NoError(t, err)
	require.Len(t, entries, 3, "zero-XP members never appear")
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, "alice", entries[1].UserID)
	assert.Equal(t, "carol", entries[2].UserID)
}

func TestLeaderboardTieBreaksByUserID(t *testing.T) {
	s := newBoardStorage(t)
	require.NoError(t, s.SetUserProgress("g1", "zed", st.UserProgress{TotalXP: 100}))
	require.NoError(t, s.SetUserProgress("g1", "amy", st.UserProgress{TotalXP: 100}))

	entries, err := Leaderboard(s, "g1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "amy", entries[0].UserID)
	assert.Equal(t, "zed", entries[1].UserID)
}

func TestPositionOfConsistentWithOrdering(t *testing.T) {
	s := newBoardStorage(t)
	require.NoError(t, s.SetUserProgress("g1", "alice", st.UserProgress{TotalXP: 300}))
	require.NoError(t, s.SetUserProgress("g1", "bob", st.UserProgress{TotalXP: 500}))

	entries, err := Leaderboard(s, "g1")
	require.NoError(t, err)

	for i, e := range entries {
		pos, ok, err := PositionOf(s, "g1", e.UserID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i+1, pos)
	}
}

func TestPositionOfAbsentForZeroXP(t *testing.T) {
	s := newBoardStorage(t)
	require.NoError(t, s.SetUserProgress("g1", "dave", st.UserProgress{TotalXP: 0}))

	_, ok, err := PositionOf(s, "g1", "dave")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = PositionOf(s, "g1", "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeaderboardEmptyGuild(t *testing.T) {
	s := newBoardStorage(t)

	entries, err := Leaderboard(s, "g1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
