package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"levelbot/internal/bot"

	"github.com/bwmarrin/discordgo"
)

// The tracker calls these from message handlers, so every Discord side
// effect goes through the adaptive limiter. Failures are logged and
// dropped; a missed announcement is not worth retry storms.

// AnnounceLevelUp posts a level-up message to the given channel.
func (b *Bot) AnnounceLevelUp(guildID, channelID, userID string, newLevel uint32) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.limiter.Wait(ctx); err != nil {
		log.Printf("[WARN] [%s] Dropped level-up announcement for %s: %v", guildID, userID, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("🎉 <@%s> leveled up to **level %d**!", userID, newLevel),
		Color:       bot.EmbedColor,
	}
	if err := bot.MessageEmbed(b.dg, channelID, embed); err != nil {
		b.limiter.Backoff()
		log.Printf("[ERR] [%s] Failed to announce level-up for %s: %v", guildID, userID, err)
		return
	}
	b.limiter.Success()
}

// GrantRole assigns a level reward role to a member.
func (b *Bot) GrantRole(guildID, userID, roleID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.limiter.Wait(ctx); err != nil {
		log.Printf("[WARN] [%s] Dropped role grant %s for %s: %v", guildID, roleID, userID, err)
		return
	}

	if err := b.dg.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
		b.limiter.Backoff()
		log.Printf("[ERR] [%s] Failed to grant role %s to %s: %v", guildID, roleID, userID, err)
		return
	}
	b.limiter.Success()
}
