package command

import (
	"errors"
	"fmt"
	"log"

	"levelbot/internal/bot"
	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return bot.RespondEphemeral(s, i, content)
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) error {
	return bot.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       bot.EmbedColor,
	})
}

// replyLevelError turns errors from the leveling core into user-facing replies.
// Validation failures and missing data are the caller's problem; anything else
// gets logged and a generic apology.
func replyLevelError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case level.IsValidation(err):
		return respondEphemeral(s, i, fmt.Sprintf("⚠️ %s", err.Error()))
	case errors.Is(err, level.ErrNoData):
		return respondEphemeral(s, i, "There is nothing to work with yet. No leveling data found.")
	default:
		log.Println("[ERR] Leveling operation failed:", err)
		return respondEphemeral(s, i, "Something went wrong on my end. Try again in a moment.")
	}
}

// optionMap flattens interaction options by name.
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// targetUser resolves the "user" option, falling back to the invoker.
func targetUser(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.User {
	if opt, ok := opts["user"]; ok {
		return opt.UserValue(s)
	}
	return i.Member.User
}

// displayName prefers the guild nickname over the account username.
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
