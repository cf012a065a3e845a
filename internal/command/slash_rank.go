package command

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"levelbot/internal/bot"
	"levelbot/internal/level"
	"levelbot/internal/rankcard"

	"github.com/bwmarrin/discordgo"
)

type RankCommand struct{}

func (c *RankCommand) Name() string        { return "rank" }
func (c *RankCommand) Description() string { return "Show a member's rank card" }

func (c *RankCommand) Category() string { return "📈 Leveling" }

func (c *RankCommand) RequireAdmin() bool { return false }

func (c *RankCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose card to show (defaults to you)",
				Required:    false,
			},
		},
	}
}

func (c *RankCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	st := slash.Storage
	opts := optionMap(i.ApplicationCommandData().Options)

	user := targetUser(s, i, opts)

	// Rendering fetches images over the network, so acknowledge first.
	if err := bot.RespondDeferred(s, i); err != nil {
		return err
	}

	progress, err := st.UserProgress(i.GuildID, user.ID)
	if err != nil {
		return bot.EditResponse(s, i, "Couldn't load leveling data.")
	}
	cfg, err := st.GuildConfig(i.GuildID)
	if err != nil {
		return bot.EditResponse(s, i, "Couldn't load leveling data.")
	}

	rank, ok, err := level.PositionOf(st, i.GuildID, user.ID)
	if err != nil {
		return bot.EditResponse(s, i, "Couldn't load leveling data.")
	}
	if !ok {
		board, err := level.Leaderboard(st, i.GuildID)
		if err != nil {
			return bot.EditResponse(s, i, "Couldn't load leveling data.")
		}
		rank = len(board) + 1
	}

	member, _ := s.State.Member(i.GuildID, user.ID)

	card, err := slash.Renderer.Render(context.Background(), rankcard.Request{
		DisplayName:   displayName(member, user),
		AvatarURL:     user.AvatarURL("256"),
		BackgroundURL: cfg.RankCardBG,
		TextColor:     cfg.RankCardTextColor,
		XP:            progress.XP,
		XPNeeded:      level.XPForLevel(progress.Level),
		Level:         progress.Level,
		TotalXP:       progress.TotalXP,
		Rank:          rank,
	})
	if err != nil {
		log.Println("[ERR] Rank card render failed:", err)
		return bot.EditResponse(s, i, "Couldn't render the rank card. If a custom background is set, check that its URL still points at an image.")
	}

	embed := &discordgo.MessageEmbed{
		Color: bot.EmbedColor,
		Image: &discordgo.MessageEmbedImage{URL: "attachment://rank_card.png"},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", progress.Level), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%d / %d", progress.XP, level.XPForLevel(progress.Level)), Inline: true},
			{Name: "Rank", Value: fmt.Sprintf("#%d", rank), Inline: true},
		},
	}
	return bot.FollowupEmbedWithFile(s, i, embed, bytes.NewReader(card), "rank_card.png")
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&RankCommand{},
			),
		),
	)
}
