package discord

import (
	"context"
	"fmt"
	"log"

	"levelbot/internal/config"
	"levelbot/internal/level"
	"levelbot/internal/rankcard"
	"levelbot/internal/storage"
	"levelbot/pkg/ratelimit"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	storage  *storage.Storage
	cfg      *config.Config
	tracker  *level.Tracker
	renderer *rankcard.Renderer
	limiter  *ratelimit.AdaptiveLimiter
}

// NewBot wires the leveling tracker and rank card renderer into a bot.
// The bot itself delivers level-up announcements and role grants, so it
// is the tracker's notifier.
func NewBot(cfg *config.Config, store *storage.Storage, renderer *rankcard.Renderer) *Bot {
	b := &Bot{
		cfg:      cfg,
		storage:  store,
		renderer: renderer,
		limiter:  ratelimit.New(5, 1, 20, 1, 0.5),
	}
	b.tracker = level.NewTracker(store, b)
	return b
}

// Run starts the Discord bot and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent
}
