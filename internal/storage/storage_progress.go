package storage

import (
	st "levelbot/internal/storagetypes"
)

// UserProgress returns a member's progress record, or an all-zero record if
// none exists yet. Lazily-created records are not persisted until the first
// write.
func (s *Storage) UserProgress(guildID, userID string) (st.UserProgress, error) {
	data, exists := s.ds.Get(tableLevels, progressKey(guildID, userID))
	if !exists {
		return st.UserProgress{}, nil
	}

	var progress st.UserProgress
	if err := decode(data, &progress); err != nil {
		return st.UserProgress{}, err
	}
	return progress, nil
}

func (s *Storage) SetUserProgress(guildID, userID string, progress st.UserProgress) error {
	s.ds.Set(tableLevels, progressKey(guildID, userID), progress)
	return nil
}

func (s *Storage) DeleteUserProgress(guildID, userID string) {
	s.ds.Delete(tableLevels, progressKey(guildID, userID))
}

// GuildProgress returns every progress record stored for a guild, keyed by
// user ID.
func (s *Storage) GuildProgress(guildID string) (map[string]st.UserProgress, error) {
	out := make(map[string]st.UserProgress)
	for key, data := range s.ds.All(tableLevels) {
		gID, userID, ok := splitProgressKey(key)
		if !ok || gID != guildID {
			continue
		}

		var progress st.UserProgress
		if err := decode(data, &progress); err != nil {
			return nil, err
		}
		out[userID] = progress
	}
	return out, nil
}

// DeleteGuildProgress removes every progress record for a guild and reports
// how many were removed.
func (s *Storage) DeleteGuildProgress(guildID string) int {
	removed := 0
	for _, key := range s.ds.Keys(tableLevels) {
		if gID, _, ok := splitProgressKey(key); ok && gID == guildID {
			s.ds.Delete(tableLevels, key)
			removed++
		}
	}
	return removed
}

// PruneGuildProgress removes progress records whose user ID is not in keep
// and reports how many were removed.
func (s *Storage) PruneGuildProgress(guildID string, keep map[string]bool) int {
	removed := 0
	for _, key := range s.ds.Keys(tableLevels) {
		gID, userID, ok := splitProgressKey(key)
		if !ok || gID != guildID {
			continue
		}
		if !keep[userID] {
			s.ds.Delete(tableLevels, key)
			removed++
		}
	}
	return removed
}

// HasGuildProgress reports whether any progress record exists for a guild.
func (s *Storage) HasGuildProgress(guildID string) bool {
	for _, key := range s.ds.Keys(tableLevels) {
		if gID, _, ok := splitProgressKey(key); ok && gID == guildID {
			return true
		}
	}
	return false
}
