package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type RemoveXPCommand struct{}

func (c *RemoveXPCommand) Name() string        { return "removexp" }
func (c *RemoveXPCommand) Description() string { return "Take XP away from a member" }

func (c *RemoveXPCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *RemoveXPCommand) RequireAdmin() bool { return true }

func (c *RemoveXPCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minAmount := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to take XP from",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How much XP to remove",
				Required:    true,
				MinValue:    &minAmount,
			},
		},
	}
}

func (c *RemoveXPCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	opts := optionMap(i.ApplicationCommandData().Options)

	user := opts["user"].UserValue(s)
	amount := opts["amount"].IntValue()
	if amount < 1 {
		return respondEphemeral(s, i, "Amount must be a positive number.")
	}

	progress, err := level.RemoveXP(slash.Storage, i.GuildID, user.ID, uint64(amount))
	if err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "XP removed",
		fmt.Sprintf("Removed **%d** XP from <@%s>. They are now level **%d** with **%s** total XP.",
			amount, user.ID, progress.Level, formatTotalXP(progress.TotalXP)))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&RemoveXPCommand{},
			),
		),
	)
}
