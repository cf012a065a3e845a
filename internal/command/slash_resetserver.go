package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type ResetServerCommand struct{}

func (c *ResetServerCommand) Name() string { return "resetserver" }
func (c *ResetServerCommand) Description() string {
	return "Wipe all leveling data for this server"
}

func (c *ResetServerCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *ResetServerCommand) RequireAdmin() bool { return true }

func (c *ResetServerCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "confirm",
				Description: "This deletes every member's XP. There is no undo.",
				Required:    true,
			},
		},
	}
}

func (c *ResetServerCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	opts := optionMap(i.ApplicationCommandData().Options)

	if !opts["confirm"].BoolValue() {
		return respondEphemeral(s, i, "Not confirmed. Nothing was deleted.")
	}

	removed, err := level.ResetServer(slash.Storage, i.GuildID)
	if err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "Server reset",
		fmt.Sprintf("Wiped leveling data for **%d** member(s). Everyone starts from scratch.", removed))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&ResetServerCommand{},
			),
		),
	)
}
