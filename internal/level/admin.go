package level

import (
	st "levelbot/internal/storagetypes"

	"levelbot/internal/storage"
)

// Admin mutations adjust a member's lifetime XP directly and re-normalize
// level and in-level XP through the curve, so records stay consistent with
// Resolve.

func normalize(totalXP uint64, progress st.UserProgress) st.UserProgress {
	info := Resolve(totalXP)
	progress.TotalXP = totalXP
	progress.Level = info.Level
	progress.XP = info.XP
	return progress
}

// ResetUser zeroes a member's progress. The activity timestamp resets too,
// so their next message grants XP immediately.
func ResetUser(s *storage.Storage, guildID, userID string) error {
	return s.SetUserProgress(guildID, userID, st.UserProgress{})
}

// AddXP adds amount to a member's lifetime XP.
func AddXP(s *storage.Storage, guildID, userID string, amount uint64) (st.UserProgress, error) {
	if amount == 0 {
		return st.UserProgress{}, validationf("XP amount must be greater than zero")
	}

	progress, err := s.UserProgress(guildID, userID)
	if err != nil {
		return st.UserProgress{}, err
	}

	progress = normalize(progress.TotalXP+amount, progress)
	return progress, s.SetUserProgress(guildID, userID, progress)
}

// RemoveXP subtracts amount from a member's lifetime XP, clamping at zero.
func RemoveXP(s *storage.Storage, guildID, userID string, amount uint64) (st.UserProgress, error) {
	if amount == 0 {
		return st.UserProgress{}, validationf("XP amount must be greater than zero")
	}

	progress, err := s.UserProgress(guildID, userID)
	if err != nil {
		return st.UserProgress{}, err
	}

	total := progress.TotalXP
	if amount > total {
		total = 0
	} else {
		total -= amount
	}

	progress = normalize(total, progress)
	return progress, s.SetUserProgress(guildID, userID, progress)
}

// SetLevel puts a member exactly at the start of the target level.
func SetLevel(s *storage.Storage, guildID, userID string, targetLevel uint32) (st.UserProgress, error) {
	progress, err := s.UserProgress(guildID, userID)
	if err != nil {
		return st.UserProgress{}, err
	}

	progress = normalize(TotalXPForLevel(targetLevel), progress)
	return progress, s.SetUserProgress(guildID, userID, progress)
}

// SetXP sets a member's lifetime XP directly.
func SetXP(s *storage.Storage, guildID, userID string, totalXP uint64) (st.UserProgress, error) {
	progress, err := s.UserProgress(guildID, userID)
	if err != nil {
		return st.UserProgress{}, err
	}

	progress = normalize(totalXP, progress)
	return progress, s.SetUserProgress(guildID, userID, progress)
}

// ResetServer removes every progress record for a guild and reports how
// many were removed. ErrNoData when the guild has nothing stored.
func ResetServer(s *storage.Storage, guildID string) (int, error) {
	if !s.HasGuildProgress(guildID) {
		return 0, ErrNoData
	}
	return s.DeleteGuildProgress(guildID), nil
}

// SyncMembers prunes progress records whose users are no longer guild
// members. ErrNoData when the guild has nothing stored.
func SyncMembers(s *storage.Storage, guildID string, members map[string]bool) (int, error) {
	if !s.HasGuildProgress(guildID) {
		return 0, ErrNoData
	}
	return s.PruneGuildProgress(guildID, members), nil
}
