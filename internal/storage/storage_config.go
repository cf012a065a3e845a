package storage

import (
	st "levelbot/internal/storagetypes"
)

// GuildConfig returns a guild's leveling configuration, creating and
// persisting the defaults on first access. Fields absent from a stored
// record keep their default values.
func (s *Storage) GuildConfig(guildID string) (st.GuildLevelConfig, error) {
	data, exists := s.ds.Get(tableConfig, guildID)
	if !exists {
		cfg := st.DefaultGuildLevelConfig()
		s.ds.Set(tableConfig, guildID, cfg)
		return cfg, nil
	}

	cfg := st.DefaultGuildLevelConfig()
	if err := decode(data, &cfg); err != nil {
		return st.GuildLevelConfig{}, err
	}
	return cfg, nil
}

func (s *Storage) SetGuildConfig(guildID string, cfg st.GuildLevelConfig) error {
	s.ds.Set(tableConfig, guildID, cfg)
	return nil
}
