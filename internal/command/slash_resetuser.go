package command

import (
	"fmt"

	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type ResetUserCommand struct{}

func (c *ResetUserCommand) Name() string        { return "resetuser" }
func (c *ResetUserCommand) Description() string { return "Reset a member's XP and level to zero" }

func (c *ResetUserCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *ResetUserCommand) RequireAdmin() bool { return true }

func (c *ResetUserCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to reset",
				Required:    true,
			},
		},
	}
}

func (c *ResetUserCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	opts := optionMap(i.ApplicationCommandData().Options)

	user := opts["user"].UserValue(s)

	if err := level.ResetUser(slash.Storage, i.GuildID, user.ID); err != nil {
		return replyLevelError(s, i, err)
	}

	return respondEmbed(s, i, "Member reset",
		fmt.Sprintf("<@%s> starts over. XP, level and cooldown are all back to zero.", user.ID))
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&ResetUserCommand{},
			),
		),
	)
}
