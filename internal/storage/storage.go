// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"levelbot/datastore"
)

const (
	tableLevels = "levels"
	tableConfig = "level_config"
)

type Storage struct {
	ds *datastore.DataStore
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// progressKey addresses one member's record inside the levels table.
// Discord snowflakes never contain ':'.
func progressKey(guildID, userID string) string {
	return guildID + ":" + userID
}

func splitProgressKey(key string) (guildID, userID string, ok bool) {
	guildID, userID, ok = strings.Cut(key, ":")
	return
}

// decode converts a raw datastore value into a typed record via a JSON
// round trip.
func decode(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshalling data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error unmarshalling record: %w", err)
	}
	return nil
}
