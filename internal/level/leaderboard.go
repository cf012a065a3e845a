package level

import (
	"sort"

	"levelbot/internal/storage"
)

// Entry is one leaderboard row.
type Entry struct {
	UserID  string
	TotalXP uint64
}

// Leaderboard returns every member of a guild with lifetime XP above zero,
// sorted by lifetime XP descending. Ties order by ascending user ID so the
// ranking is deterministic. Recomputed on every call; guild populations are
// small enough that this is cheap.
func Leaderboard(s *storage.Storage, guildID string) ([]Entry, error) {
	all, err := s.GuildProgress(guildID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(all))
	for userID, progress := range all {
		if progress.TotalXP > 0 {
			entries = append(entries, Entry{UserID: userID, TotalXP: progress.TotalXP})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalXP != entries[j].TotalXP {
			return entries[i].TotalXP > entries[j].TotalXP
		}
		return entries[i].UserID < entries[j].UserID
	})

	return entries, nil
}

// PositionOf returns a member's 1-based leaderboard position. ok is false
// for members with no record or zero lifetime XP.
func PositionOf(s *storage.Storage, guildID, userID string) (pos int, ok bool, err error) {
	entries, err := Leaderboard(s, guildID)
	if err != nil {
		return 0, false, err
	}

	for i, e := range entries {
		if e.UserID == userID {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}
