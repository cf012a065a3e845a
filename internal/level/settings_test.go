package level

import (
	"path/filepath"
	"testing"

	"levelbot/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsStorage(t *testing.T) *storage.Storage {
	t.Helper()
	s, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetCooldownBounds(t *testing.T) {
	s := newSettingsStorage(t)

	assert.True(t, IsValidation(SetCooldown(s, "g1", 4)))
	assert.True(t, IsValidation(SetCooldown(s, "g1", 301)))
	require.NoError(t, SetCooldown(s, "g1", 5))
	require.NoError(t, SetCooldown(s, "g1", 300))

	cfg, err := s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Equal(t, uint32(300), cfg.XPCooldownSeconds)
}

func TestSetXPRangeBounds(t *testing.T) {
	s := newSettingsStorage(t)

	assert.True(t, IsValidation(SetXPRange(s, "g1", 0, 10)))
	assert.True(t, IsValidation(SetXPRange(s, "g1", 10, 101)))
	assert.True(t, IsValidation(SetXPRange(s, "g1", 20, 10)))
	require.NoError(t, SetXPRange(s, "g1", 5, 5), "min may equal max")

	cfg, err := s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), cfg.XPMin)
	assert.Equal(t, uint32(5), cfg.XPMax)
}

func TestSetRankCardValidation(t *testing.T) {
	s := newSettingsStorage(t)

	assert.True(t, IsValidation(SetRankCard(s, "g1", "not-a-url", "#FFFFFF")))
	assert.True(t, IsValidation(SetRankCard(s, "g1", "ftp://example.com/bg.png", "#FFFFFF")))
	assert.True(t, IsValidation(SetRankCard(s, "g1", "https://example.com/bg.png", "white")))
	assert.True(t, IsValidation(SetRankCard(s, "g1", "https://example.com/bg.png", "#FFF")))

	require.NoError(t, SetRankCard(s, "g1", "https://example.com/bg.png", "#1a2B3c"))
	cfg, err := s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/bg.png", cfg.RankCardBG)
	assert.Equal(t, "#1a2B3c", cfg.RankCardTextColor)

	require.NoError(t, SetRankCard(s, "g1", "default", "#FFFFFF"))
	cfg, err = s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Empty(t, cfg.RankCardBG)
}

func TestLevelRoleMapping(t *testing.T) {
	s := newSettingsStorage(t)

	require.NoError(t, SetLevelRole(s, "g1", 5, "role5"))
	require.NoError(t, SetLevelRole(s, "g1", 5, "role5b"), "setting again overwrites")

	cfg, err := s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Equal(t, "role5b", cfg.LevelRoles["5"])

	require.NoError(t, ClearLevelRole(s, "g1", 5))
	assert.ErrorIs(t, ClearLevelRole(s, "g1", 5), ErrNoData)
}

func TestToggleIgnoredChannel(t *testing.T) {
	s := newSettingsStorage(t)

	ignored, err := ToggleIgnoredChannel(s, "g1", "c1")
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = ToggleIgnoredChannel(s, "g1", "c1")
	require.NoError(t, err)
	assert.False(t, ignored)

	cfg, err := s.GuildConfig("g1")
	require.NoError(t, err)
	assert.Empty(t, cfg.IgnoredChannels)
}
