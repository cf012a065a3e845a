package level

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"

	"levelbot/internal/storage"
)

// Guild settings mutations. Every setter validates its input before
// touching the stored config.

const (
	MinCooldownSeconds = 5
	MaxCooldownSeconds = 300
	MinXPPerMessage    = 1
	MaxXPPerMessage    = 100
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SetCooldown sets the per-member XP cooldown, 5-300 seconds.
func SetCooldown(s *storage.Storage, guildID string, seconds uint32) error {
	if seconds < MinCooldownSeconds || seconds > MaxCooldownSeconds {
		return validationf("cooldown must be between %d and %d seconds", MinCooldownSeconds, MaxCooldownSeconds)
	}

	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	cfg.XPCooldownSeconds = seconds
	return s.SetGuildConfig(guildID, cfg)
}

// SetXPRange sets the random XP grant range, 1-100 with min <= max.
func SetXPRange(s *storage.Storage, guildID string, min, max uint32) error {
	if min < MinXPPerMessage || max > MaxXPPerMessage || min > max {
		return validationf("min and max XP must be between %d and %d, and min must be <= max", MinXPPerMessage, MaxXPPerMessage)
	}

	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	cfg.XPMin = min
	cfg.XPMax = max
	return s.SetGuildConfig(guildID, cfg)
}

// SetRankCard configures the rank card background and text color. A
// background of "default" clears the custom image.
func SetRankCard(s *storage.Storage, guildID, backgroundURL, textColor string) error {
	if backgroundURL != "default" {
		u, err := url.Parse(backgroundURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return validationf("background must be a valid http(s) URL or 'default'")
		}
	}
	if !hexColorRegex.MatchString(textColor) {
		return validationf("text color must be a 6-digit hex code like #FFFFFF")
	}

	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	if backgroundURL == "default" {
		cfg.RankCardBG = ""
	} else {
		cfg.RankCardBG = backgroundURL
	}
	cfg.RankCardTextColor = textColor
	return s.SetGuildConfig(guildID, cfg)
}

// SetLevelRole maps a level threshold to a role. A level maps to at most
// one role; setting again overwrites.
func SetLevelRole(s *storage.Storage, guildID string, lvl uint32, roleID string) error {
	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	cfg.LevelRoles[strconv.FormatUint(uint64(lvl), 10)] = roleID
	return s.SetGuildConfig(guildID, cfg)
}

// ClearLevelRole removes the role mapping for a level. ErrNoData when no
// role is configured there.
func ClearLevelRole(s *storage.Storage, guildID string, lvl uint32) error {
	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}

	key := strconv.FormatUint(uint64(lvl), 10)
	if _, ok := cfg.LevelRoles[key]; !ok {
		return ErrNoData
	}
	delete(cfg.LevelRoles, key)
	return s.SetGuildConfig(guildID, cfg)
}

// ToggleIgnoredChannel flips a channel's ignored state and reports whether
// the channel is ignored afterwards.
func ToggleIgnoredChannel(s *storage.Storage, guildID, channelID string) (bool, error) {
	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return false, err
	}

	if i := slices.Index(cfg.IgnoredChannels, channelID); i >= 0 {
		cfg.IgnoredChannels = slices.Delete(cfg.IgnoredChannels, i, i+1)
		return false, s.SetGuildConfig(guildID, cfg)
	}

	cfg.IgnoredChannels = append(cfg.IgnoredChannels, channelID)
	return true, s.SetGuildConfig(guildID, cfg)
}

// SetAnnounceChannel routes level-up announcements to a fixed channel.
func SetAnnounceChannel(s *storage.Storage, guildID, channelID string) error {
	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	cfg.LevelUpChannel = channelID
	return s.SetGuildConfig(guildID, cfg)
}

// SetAnnouncementsEnabled toggles level-up announcements.
func SetAnnouncementsEnabled(s *storage.Storage, guildID string, enabled bool) error {
	cfg, err := s.GuildConfig(guildID)
	if err != nil {
		return err
	}
	cfg.LevelUpEnabled = enabled
	return s.SetGuildConfig(guildID, cfg)
}
