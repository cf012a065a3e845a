package discord

import (
	"log"
	"time"

	"levelbot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// registerCommands syncs slash commands for a guild with Discord:
// deletes obsolete ones, creates/updates commands whose definition has changed.
func (b *Bot) registerCommands(guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = c
	}

	local := buildCommandDefinitions()

	b.deleteObsoleteCommands(appID, guildID, remoteByName, local)
	b.upsertChangedCommands(appID, guildID, local)

	return nil
}

func (b *Bot) appID() (string, error) {
	if b.dg.State.User != nil && b.dg.State.User.ID != "" {
		return b.dg.State.User.ID, nil
	}
	user, err := b.dg.User("@me")
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// buildCommandDefinitions returns ApplicationCommand definitions for all registered commands.
func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range command.All() {
		if sp, ok := c.(command.SlashProvider); ok {
			if def := sp.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	return defs
}

// deleteObsoleteCommands removes commands from Discord that are no longer in the local registry.
func (b *Bot) deleteObsoleteCommands(appID, guildID string, remote map[string]*discordgo.ApplicationCommand, local []*discordgo.ApplicationCommand) {
	localNames := make(map[string]struct{}, len(local))
	for _, d := range local {
		localNames[d.Name] = struct{}{}
	}

	hashes := loadCommandHashes(guildID)
	for name, rc := range remote {
		if _, exists := localNames[name]; exists {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, name)
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, name, err)
		} else {
			delete(hashes, name)
		}
	}
	saveCommandHashes(guildID, hashes)
}

// upsertChangedCommands creates or updates commands whose hash differs from the cached value.
func (b *Bot) upsertChangedCommands(appID, guildID string, defs []*discordgo.ApplicationCommand) {
	cachedHashes := loadCommandHashes(guildID)

	var changed []*discordgo.ApplicationCommand
	newHashes := make(map[string]string, len(defs))
	for _, d := range defs {
		h := hashCommand(d)
		newHashes[d.Name] = h
		if cachedHashes[d.Name] != h {
			changed = append(changed, d)
		}
	}
	if len(changed) == 0 {
		return
	}

	log.Printf("[INFO] [%s] Registering %d changed command(s)...", guildID, len(changed))
	for _, d := range changed {
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, d); err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", guildID, d.Name, err)
		} else {
			log.Printf("[DONE] [%s] Registered: %s", guildID, d.Name)
		}
		time.Sleep(25 * time.Millisecond) // stay well under Discord's rate limit
	}

	for k, v := range newHashes {
		cachedHashes[k] = v
	}
	saveCommandHashes(guildID, cachedHashes)
}
