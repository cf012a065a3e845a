package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwmarrin/discordgo"
)

type fakeCommand struct {
	name  string
	admin bool
	ran   bool
}

func (c *fakeCommand) Name() string        { return c.name }
func (c *fakeCommand) Description() string { return "fake" }
func (c *fakeCommand) Category() string    { return "test" }
func (c *fakeCommand) RequireAdmin() bool  { return c.admin }
func (c *fakeCommand) Run(ctx interface{}) error {
	c.ran = true
	return nil
}

func (c *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.name, Description: "fake"}
}

func TestRegisterReturnsPlainCommandAsIs(t *testing.T) {
	cmd := &fakeCommand{name: "fake-plain"}
	Register(cmd)

	got, ok := Get("fake-plain")
	require.True(t, ok)
	assert.Same(t, Command(cmd), got)
}

func TestRegisterGatesAdminCommands(t *testing.T) {
	cmd := &fakeCommand{name: "fake-admin", admin: true}
	Register(cmd)

	got, ok := Get("fake-admin")
	require.True(t, ok)
	assert.NotSame(t, Command(cmd), got, "admin command should be wrapped")
	assert.True(t, got.RequireAdmin())

	// Wrapping keeps the slash definition visible to registration.
	sp, ok := got.(SlashProvider)
	require.True(t, ok)
	require.NotNil(t, sp.SlashDefinition())
	assert.Equal(t, "fake-admin", sp.SlashDefinition().Name)
}

func TestIsAdministrator(t *testing.T) {
	assert.False(t, isAdministrator(nil))
	assert.False(t, isAdministrator(&discordgo.Member{Permissions: 0}))
	assert.True(t, isAdministrator(&discordgo.Member{
		Permissions: discordgo.PermissionAdministrator,
	}))
}

func TestLevelingCommandsRegistered(t *testing.T) {
	for _, name := range []string{
		"rank", "leaderboard", "levelsettings", "help",
		"addxp", "removexp", "setlevel", "setxp",
		"resetuser", "resetserver", "sync",
	} {
		cmd, ok := Get(name)
		require.True(t, ok, "command %s missing", name)

		sp, ok := cmd.(SlashProvider)
		require.True(t, ok, "command %s has no slash definition", name)
		assert.NotNil(t, sp.SlashDefinition())
	}
}

func TestMiddlewarePreservesSlashDefinition(t *testing.T) {
	cmd := &fakeCommand{name: "fake-wrapped"}
	wrapped := WithGuildOnly(WithCommandLogger(cmd))

	sp, ok := wrapped.(SlashProvider)
	require.True(t, ok)
	def := sp.SlashDefinition()
	require.NotNil(t, def)
	assert.Equal(t, "fake-wrapped", def.Name)

	require.NoError(t, wrapped.Run(struct{}{}))
	assert.True(t, cmd.ran)
}
