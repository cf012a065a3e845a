package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type AddXPCommand struct{}

func (c *AddXPCommand) Name() string        { return "addxp" }
func (c *AddXPCommand) Description() string { return "Grant XP to a member" }

func (c *AddXPCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *AddXPCommand) RequireAdmin() bool { return true }

func (c *AddXPCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minAmount := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to grant XP to",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How much XP to grant",
				Required:    true,
				MinValue:    &minAmount,
			},
		},
	}
}

func (c *AddXPCommand) Run(ctx interface{}) error {
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

	progress, err := level.AddXP(slash.Storage, i.GuildID, user.ID, uint64(amount))
	if err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "XP granted",
		fmt.Sprintf("Added **%d** XP to <@%s>. They are now level **%d** with **%s** total XP.",
			amount, user.ID, progress.Level, formatTotalXP(progress.TotalXP)))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&AddXPCommand{},
			),
		),
	)
}
