// Package level implements the XP engine: the level curve, activity
// tracking with cooldown gating, leaderboard ranking, admin mutations and
// guild settings.
package level

// XPForLevel returns how much XP must be earned while at the given level to
// reach the next one. Strictly increasing.
func XPForLevel(level uint32) uint64 {
	l := uint64(level)
	return 5*l*l + 50*l + 100
}

// TotalXPForLevel returns the lifetime XP needed to sit exactly at the
// start of the given level.
func TotalXPForLevel(level uint32) uint64 {
	var total uint64
	for l := uint32(0); l < level; l++ {
		total += XPForLevel(l)
	}
	return total
}

// Info is a level standing derived from lifetime XP.
type Info struct {
	Level    uint32
	XP       uint64 // XP earned within the current level
	XPNeeded uint64 // XP required to finish the current level
}

// Resolve derives the canonical level standing from lifetime XP. Progress
// records must always agree with this derivation; admin mutations
// re-normalize through it.
func Resolve(totalXP uint64) Info {
	var level uint32
	remainder := totalXP
	for {
		needed := XPForLevel(level)
		if remainder < needed {
			return Info{Level: level, XP: remainder, XPNeeded: needed}
		}
		remainder -= needed
		level++
	}
}
