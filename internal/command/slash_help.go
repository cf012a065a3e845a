package command

import (
	"fmt"
	"sort"
	"strings"

	"levelbot/internal/bot"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show all commands, grouped by category" }

func (c *HelpCommand) Category() string { return "🕯️ Information" }

func (c *HelpCommand) RequireAdmin() bool { return false }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	showAdmin := isAdministrator(slash.Event.Member)

	embed := &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: buildHelpMessage(showAdmin),
		Color:       bot.EmbedColor,
	}
	return bot.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}

// buildHelpMessage lists commands grouped by category. Admin-only commands
// are hidden from non-admins.
func buildHelpMessage(showAdmin bool) string {
	byCategory := map[string][]Command{}
	for _, cmd := range All() {
		if cmd.RequireAdmin() && !showAdmin {
			continue
		}
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		cmds := byCategory[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

		sb.WriteString("**" + cat + "**\n")
		for _, cmd := range cmds {
			sb.WriteString(fmt.Sprintf("`/%s` - %s\n", cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	Register(
		WithGuildOnly(
			&HelpCommand{},
		),
	)
}
