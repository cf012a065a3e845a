package level

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"time"

	"levelbot/internal/storage"
)

// Notifier receives the tracker's side-effect requests. Implementations are
// fire-and-forget: they log failures and never return them.
type Notifier interface {
	AnnounceLevelUp(guildID, channelID, userID string, newLevel uint32)
	GrantRole(guildID, userID, roleID string)
}

// Tracker converts qualifying activity events into XP grants and reacts to
// level transitions.
type Tracker struct {
	store    *storage.Storage
	notifier Notifier

	// Serializes read-modify-write cycles per (guild, user) so two events
	// for the same member cannot double-grant or lose an update.
	mu    sync.Mutex
	locks map[string]*sync.Mutex

	randXP func(min, max uint32) uint64
}

func NewTracker(store *storage.Storage, notifier Notifier) *Tracker {
	return &Tracker{
		store:    store,
		notifier: notifier,
		locks:    make(map[string]*sync.Mutex),
		randXP: func(min, max uint32) uint64 {
			return uint64(min) + uint64(rand.Int63n(int64(max-min)+1))
		},
	}
}

func (t *Tracker) userLock(guildID, userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := guildID + ":" + userID
	lock, ok := t.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[key] = lock
	}
	return lock
}

// OnActivity applies a cooldown-gated XP grant for a message sent at the
// given time. Activity in ignored channels and messages inside the cooldown
// window are silently skipped.
func (t *Tracker) OnActivity(guildID, userID, channelID string, at time.Time) error {
	cfg, err := t.store.GuildConfig(guildID)
	if err != nil {
		return fmt.Errorf("load guild config: %w", err)
	}

	if slices.Contains(cfg.IgnoredChannels, channelID) {
		return nil
	}

	lock := t.userLock(guildID, userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := t.store.UserProgress(guildID, userID)
	if err != nil {
		return fmt.Errorf("load user progress: %w", err)
	}

	if at.Sub(progress.LastMessage) < time.Duration(cfg.XPCooldownSeconds)*time.Second {
		return nil
	}

	gain := t.randXP(cfg.XPMin, cfg.XPMax)
	progress.XP += gain
	progress.TotalXP += gain
	progress.LastMessage = at

	oldLevel := progress.Level
	for progress.XP >= XPForLevel(progress.Level) {
		progress.XP -= XPForLevel(progress.Level)
		progress.Level++
	}

	if err := t.store.SetUserProgress(guildID, userID, progress); err != nil {
		return fmt.Errorf("save user progress: %w", err)
	}

	if progress.Level > oldLevel && t.notifier != nil {
		if cfg.LevelUpEnabled {
			target := cfg.LevelUpChannel
			if target == "" {
				target = channelID
			}
			t.notifier.AnnounceLevelUp(guildID, target, userID, progress.Level)
		}
		t.grantLevelRoles(guildID, userID, cfg.LevelRoles, oldLevel, progress.Level)
	}

	return nil
}

// grantLevelRoles requests a role grant for every configured threshold
// crossed by this level-up. Invalid config entries are skipped.
func (t *Tracker) grantLevelRoles(guildID, userID string, levelRoles map[string]string, oldLevel, newLevel uint32) {
	for levelStr, roleID := range levelRoles {
		threshold, err := strconv.ParseUint(levelStr, 10, 32)
		if err != nil {
			continue
		}
		if oldLevel < uint32(threshold) && uint32(threshold) <= newLevel {
			t.notifier.GrantRole(guildID, userID, roleID)
		}
	}
}
