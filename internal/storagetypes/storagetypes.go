// Package storagetypes holds the records persisted by the leveling system.
// JSON field names match the on-disk format of the original data files, so
// existing data loads as-is.
package storagetypes

import (
	"time"
)

// UserProgress is one member's leveling state in one guild.
type UserProgress struct {
	XP          uint64    `json:"xp"`       // XP earned since the last level-up
	Level       uint32    `json:"level"`    // derived tier, starts at 0
	TotalXP     uint64    `json:"total_xp"` // lifetime sum, never decreases on activity
	LastMessage time.Time `json:"last_message"`
}

// GuildLevelConfig is a guild's leveling configuration. Absent fields
// default via DefaultGuildLevelConfig on read.
type GuildLevelConfig struct {
	XPCooldownSeconds uint32            `json:"xp_cooldown"`
	XPMin             uint32            `json:"xp_min"`
	XPMax             uint32            `json:"xp_max"`
	LevelUpEnabled    bool              `json:"level_up_message_enabled"`
	LevelUpChannel    string            `json:"level_up_channel,omitempty"`
	IgnoredChannels   []string          `json:"ignore_channels"`
	LevelRoles        map[string]string `json:"level_roles"` // level (decimal string) -> role ID
	RankCardBG        string            `json:"rank_card_background,omitempty"`
	RankCardTextColor string            `json:"rank_card_text_color"`
}

// DefaultGuildLevelConfig returns the configuration a guild starts with.
func DefaultGuildLevelConfig() GuildLevelConfig {
	return GuildLevelConfig{
		XPCooldownSeconds: 60,
		XPMin:             15,
		XPMax:             25,
		LevelUpEnabled:    true,
		IgnoredChannels:   []string{},
		LevelRoles:        map[string]string{},
		RankCardTextColor: "#FFFFFF",
	}
}
