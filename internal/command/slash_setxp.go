package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type SetXPCommand struct{}

func (c *SetXPCommand) Name() string        { return "setxp" }
func (c *SetXPCommand) Description() string { return "Set a member's total XP directly" }

func (c *SetXPCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *SetXPCommand) RequireAdmin() bool { return true }

func (c *SetXPCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minXP := float64(0)
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
				Name:        "xp",
				Description: "Target total XP (level recalculates from this)",
				Required:    true,
				MinValue:    &minXP,
			},
		},
	}
}

func (c *SetXPCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	opts := optionMap(i.ApplicationCommandData().Options)

	user := opts["user"].UserValue(s)
	totalXP := opts["xp"].IntValue()
	if totalXP < 0 {
		return respondEphemeral(s, i, "XP must be zero or higher.")
	}

	progress, err := level.SetXP(slash.Storage, i.GuildID, user.ID, uint64(totalXP))
	if err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "XP set",
		fmt.Sprintf("<@%s> now has **%s** total XP, which puts them at level **%d**.",
			user.ID, formatTotalXP(progress.TotalXP), progress.Level))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&SetXPCommand{},
			),
		),
	)
}
