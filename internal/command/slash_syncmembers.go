package command

import (
	"errors"
	"fmt"

	"levelbot/internal/bot"
	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type SyncMembersCommand struct{}

func (c *SyncMembersCommand) Name() string { return "sync" }
func (c *SyncMembersCommand) Description() string {
	return "Drop leveling data for members who left the server"
}

func (c *SyncMembersCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *SyncMembersCommand) RequireAdmin() bool { return true }

func (c *SyncMembersCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SyncMembersCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event

	// Listing members pages through the API, so acknowledge first.
	if err := bot.RespondDeferred(s, i); err != nil {
		return err
	}

	members, err := fetchAllMembers(s, i.GuildID)
	if err != nil {
		return bot.EditResponse(s, i, "Couldn't list the server's members. Check that the bot has the Server Members intent.")
	}

	removed, err := level.SyncMembers(slash.Storage, i.GuildID, members)
	return bot.EditResponse(s, i, syncResultMessage(removed, err))
}

// syncResultMessage maps a prune outcome to the deferred reply. A guild
// with nothing stored is information, not a failure.
func syncResultMessage(removed int, err error) string {
	switch {
	case errors.Is(err, level.ErrNoData):
		return "⚠️ No leveling data found to sync."
	case err != nil:
		return "Couldn't prune leveling data."
	default:
		return fmt.Sprintf("🧹 Done. Dropped leveling data for **%d** departed member(s).", removed)
	}
}

// fetchAllMembers pages through the guild member list and returns present
// member IDs.
func fetchAllMembers(s *discordgo.Session, guildID string) (map[string]bool, error) {
	present := make(map[string]bool)
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return present, nil
		}
		for _, m := range page {
			present[m.User.ID] = true
			after = m.User.ID
		}
		if len(page) < 1000 {
			return present, nil
		}
	}
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&SyncMembersCommand{},
			),
		),
	)
}
