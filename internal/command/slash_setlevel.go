package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type SetLevelCommand struct{}

func (c *SetLevelCommand) Name() string        { return "setlevel" }
func (c *SetLevelCommand) Description() string { return "Set a member's level directly" }

func (c *SetLevelCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *SetLevelCommand) RequireAdmin() bool { return true }

func (c *SetLevelCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minLevel := float64(0)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to adjust",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Target level (progress within the level resets to zero)",
				Required:    true,
				MinValue:    &minLevel,
			},
		},
	}
}

func (c *SetLevelCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	opts := optionMap(i.ApplicationCommandData().Options)

	user := opts["user"].UserValue(s)
	target := opts["level"].IntValue()
	if target < 0 {
		return respondEphemeral(s, i, "Level must be zero or higher.")
	}

	progress, err := level.SetLevel(slash.Storage, i.GuildID, user.ID, uint32(target))
	if err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "Level set",
		fmt.Sprintf("<@%s> is now level **%d** with **%s** total XP.",
			user.ID, progress.Level, formatTotalXP(progress.TotalXP)))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&SetLevelCommand{},
			),
		),
	)
}
