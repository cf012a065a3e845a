package discord

import (
	"fmt"
	"log"
	"strings"
	"time"

	"levelbot/internal/bot"
	"levelbot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	for _, g := range r.Guilds {
		if b.cfg.InitSlashCommands {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		} else {
			log.Println("[INFO] Registering slash commands skipped")
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onMessageCreate feeds regular guild chatter into the XP tracker.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}
	// Bot-command chatter doesn't count as conversation.
	if strings.HasPrefix(m.Content, "!") {
		return
	}

	if err := b.tracker.OnActivity(m.GuildID, m.Author.ID, m.ChannelID, time.Now()); err != nil {
		log.Printf("[ERR] XP tracking failed for %s in %s: %v", m.Author.ID, m.GuildID, err)
	}
}

// onInteractionCreate dispatches slash commands.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s\n", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session:  s,
		Event:    i,
		Storage:  b.storage,
		Renderer: b.renderer,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
		bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running slash command: %v", err),
		})
	}
}
