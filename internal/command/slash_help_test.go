package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHelpMessageHidesAdminCommands(t *testing.T) {
	member := buildHelpMessage(false)
	admin := buildHelpMessage(true)

	assert.Contains(t, member, "`/rank`")
	assert.Contains(t, member, "`/leaderboard`")
	assert.NotContains(t, member, "`/resetserver`")
	assert.NotContains(t, member, "`/sync`")

	assert.Contains(t, admin, "`/resetserver`")
	assert.Contains(t, admin, "`/sync`")
	assert.Contains(t, admin, "`/levelsettings`")
}

func TestBuildHelpMessageGroupsByCategory(t *testing.T) {
	msg := buildHelpMessage(true)

	rank, _ := Get("rank")
	idx := strings.Index(msg, "**"+rank.Category()+"**")
	assert.GreaterOrEqual(t, idx, 0, "category heading missing")
	assert.Less(t, idx, strings.Index(msg[idx:], "`/rank`")+idx)
}
