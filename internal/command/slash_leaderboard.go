package command

import (
	"fmt"
	"strings"

	"levelbot/internal/bot"
	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

const leaderboardSize = 10

type LeaderboardCommand struct{}

func (c *LeaderboardCommand) Name() string        { return "leaderboard" }
func (c *LeaderboardCommand) Description() string { return "Show the top ranked members" }

func (c *LeaderboardCommand) Category() string { return "📈 Leveling" }

func (c *LeaderboardCommand) RequireAdmin() bool { return false }

func (c *LeaderboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LeaderboardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	st := slash.Storage

	board, err := level.Leaderboard(st, i.GuildID)
	if err != nil {
		return replyLevelError(s, i, err)
	}
	if len(board) == 0 {
		return respondEphemeral(s, i, "Nobody has earned any XP yet. Go say something.")
	}

	var b strings.Builder
	for n, entry := range board {
		if n >= leaderboardSize {
			break
		}
		info := level.Resolve(entry.TotalXP)
		b.WriteString(fmt.Sprintf("%s <@%s> — level %d, %s XP\n",
			positionLabel(n+1), entry.UserID, info.Level, formatTotalXP(entry.TotalXP)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: b.String(),
		Color:       bot.EmbedColor,
	}

	if pos, ok, err := level.PositionOf(st, i.GuildID, i.Member.User.ID); err == nil && ok {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Your rank: #%d of %d", pos, len(board)),
		}
	}

	return bot.RespondEmbed(s, i, embed)
}

func positionLabel(pos int) string {
	switch pos {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", pos)
	}
}

func formatTotalXP(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for p := lead; p < len(s); p += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[p : p+3])
	}
	return b.String()
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&LeaderboardCommand{},
			),
		),
	)
}
