package level

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"levelbot/internal/storage"
	st "levelbot/internal/storagetypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu            sync.Mutex
	announcements []string // channelID
	levels        []uint32
	roleGrants    []string // roleID
}

func (n *recordingNotifier) AnnounceLevelUp(guildID, channelID, userID string, newLevel uint32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.announcements = append(n.announcements, channelID)
	n.levels = append(n.levels, newLevel)
}

func (n *recordingNotifier) GrantRole(guildID, userID, roleID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.roleGrants = append(n.roleGrants, roleID)
}

func newTestTracker(t *testing.T) (*Tracker, *storage.Storage, *recordingNotifier) {
	t.Helper()
	s, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	n := &recordingNotifier{}
	return NewTracker(s, n), s, n
}

// setXPRange pins the random grant so tests are deterministic.
func setXPRange(t *testing.T, s *storage.Storage, guildID string, min, max uint32) {
	t.Helper()
	cfg, err := s.GuildConfig(guildID)
	require.NoError(t, err)
	cfg.XPMin = min
	cfg.XPMax = max
	require.NoError(t, s.SetGuildConfig(guildID, cfg))
}

func TestFirstMessageCreatesRecord(t *testing.T) {
	tr, s, _ := newTestTracker(t)
	setXPRange(t, s, "g1", 15, 25)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, tr.OnActivity("g1", "u1", "c1", at))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Zero(t, p.Level)
	assert.GreaterOrEqual(t, p.XP, uint64(15))
	assert.LessOrEqual(t, p.XP, uint64(25))
	assert.Equal(t, p.XP, p.TotalXP)
	assert.Equal(t, at, p.LastMessage)
}

func TestCooldownBlocksSecondGrant(t *testing.T) {
	tr, s, _ := newTestTracker(t)
	setXPRange(t, s, "g1", 10, 10)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, tr.OnActivity("g1", "u1", "c1", at))
	require.NoError(t, tr.OnActivity("g1", "u1", "c1", at.Add(59*time.Second)))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), p.TotalXP, "second message inside the cooldown must not grant")
	assert.Equal(t, at, p.LastMessage)

	require.NoError(t, tr.OnActivity("g1", "u1", "c1", at.Add(60*time.Second)))
	p, err = s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), p.TotalXP, "grant resumes once the cooldown elapsed")
}

func TestIgnoredChannelGrantsNothing(t *testing.T) {
	tr, s, _ := newTestTracker(t)

	_, err := ToggleIgnoredChannel(s, "g1", "quiet")
	require.NoError(t, err)

	require.NoError(t, tr.OnActivity("g1", "u1", "quiet", time.Now()))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Zero(t, p.TotalXP)
	assert.True(t, p.LastMessage.IsZero())
}

func TestExactThresholdBoundaryLevelsUp(t *testing.T) {
	tr, s, n := newTestTracker(t)
	setXPRange(t, s, "g1", 5, 5)

	require.NoError(t, s.SetUserProgress("g1", "u1", st.UserProgress{
		XP: 95, Level: 0, TotalXP: 95,
	}))

	require.NoError(t, tr.OnActivity("g1", "u1", "c1", time.Now()))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p.Level)
	assert.Zero(t, p.XP, "the grant exactly consumes the level-0 threshold")
	assert.Equal(t, uint64(100), p.TotalXP)

	require.Len(t, n.levels, 1)
	assert.Equal(t, uint32(1), n.levels[0])
}

func TestLevelUpAnnouncementTargetsConfiguredChannel(t *testing.T) {
	tr, s, n := newTestTracker(t)
	setXPRange(t, s, "g1", 100, 100)
	require.NoError(t, SetAnnounceChannel(s, "g1", "announce-here"))

	require.NoError(t, tr.OnActivity("g1", "u1", "origin", time.Now()))

	require.Len(t, n.announcements, 1)
	assert.Equal(t, "announce-here", n.announcements[0])
}

func TestLevelUpAnnouncementFallsBackToOrigin(t *testing.T) {
	tr, s, n := newTestTracker(t)
	setXPRange(t, s, "g1", 100, 100)

	require.NoError(t, tr.OnActivity("g1", "u1", "origin", time.Now()))

	require.Len(t, n.announcements, 1)
	assert.Equal(t, "origin", n.announcements[0])
}

func TestLevelUpAnnouncementDisabled(t *testing.T) {
	tr, s, n := newTestTracker(t)
	setXPRange(t, s, "g1", 100, 100)
	require.NoError(t, SetAnnouncementsEnabled(s, "g1", false))

	require.NoError(t, tr.OnActivity("g1", "u1", "origin", time.Now()))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p.Level)
	assert.Empty(t, n.announcements)
}

func TestRoleGrantsOnCrossedThresholds(t *testing.T) {
	tr, s, n := newTestTracker(t)
	require.NoError(t, SetLevelRole(s, "g1", 1, "role1"))
	require.NoError(t, SetLevelRole(s, "g1", 2, "role2"))
	require.NoError(t, SetLevelRole(s, "g1", 5, "role5"))

	// One grant large enough to jump from level 0 to 2.
	tr.randXP = func(min, max uint32) uint64 { return 260 }

	require.NoError(t, tr.OnActivity("g1", "u1", "c1", time.Now()))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), p.Level)
	assert.Equal(t, uint64(5), p.XP) // 260 - 100 - 155

	assert.ElementsMatch(t, []string{"role1", "role2"}, n.roleGrants)
}

func TestMultiLevelGrantMatchesResolve(t *testing.T) {
	tr, s, _ := newTestTracker(t)
	tr.randXP = func(min, max uint32) uint64 { return 10000 }

	require.NoError(t, tr.OnActivity("g1", "u1", "c1", time.Now()))

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)

	info := Resolve(p.TotalXP)
	assert.Equal(t, info.Level, p.Level)
	assert.Equal(t, info.XP, p.XP)
	assert.Equal(t, uint64(10000), p.TotalXP)
}

func TestConcurrentActivitySameUserGrantsOnce(t *testing.T) {
	tr, s, _ := newTestTracker(t)
	setXPRange(t, s, "g1", 10, 10)

	at := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.OnActivity("g1", "u1", "c1", at)
		}()
	}
	wg.Wait()

	p, err := s.UserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), p.TotalXP, "same-instant events must collapse to one grant")
}
