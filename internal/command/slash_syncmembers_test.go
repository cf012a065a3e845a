package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"levelbot/internal/level"
)

func TestSyncResultMessage(t *testing.T) {
	t.Run("empty guild is informational", func(t *testing.T) {
		msg := syncResultMessage(0, level.ErrNoData)
		assert.Equal(t, "⚠️ No leveling data found to sync.", msg)
	})

	t.Run("wrapped no-data error still informational", func(t *testing.T) {
		msg := syncResultMessage(0, fmt.Errorf("load guild: %w", level.ErrNoData))
		assert.Equal(t, "⚠️ No leveling data found to sync.", msg)
	})

	t.Run("storage failure", func(t *testing.T) {
		msg := syncResultMessage(0, errors.New("disk full"))
		assert.Equal(t, "Couldn't prune leveling data.", msg)
	})

	t.Run("success reports pruned count", func(t *testing.T) {
		msg := syncResultMessage(3, nil)
		assert.Contains(t, msg, "**3**")
	})
}
