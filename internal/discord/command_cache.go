package discord

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// guildCachePath returns the path to the guild command hash cache
func guildCachePath(guildID string) string {
	return filepath.Join("data", "commands", guildID+".json")
}

// loadCommandHashes loads the guild command cache
func loadCommandHashes(guildID string) map[string]string {
	data := make(map[string]string)

	file, err := os.ReadFile(guildCachePath(guildID))
	if err == nil {
		_ = json.Unmarshal(file, &data)
	}
	return data
}

// saveCommandHashes saves the guild command cache
func saveCommandHashes(guildID string, hashes map[string]string) {
	path := guildCachePath(guildID)
	os.MkdirAll(filepath.Dir(path), 0755)
	data, _ := json.MarshalIndent(hashes, "", "  ")
	_ = os.WriteFile(path, data, 0644)
}
