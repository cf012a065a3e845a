package command

import (
	"levelbot/internal/rankcard"
	"levelbot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	RequireAdmin() bool
	Run(ctx interface{}) error
}

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type SlashContext struct {
	Session  *discordgo.Session
	Event    *discordgo.InteractionCreate
	Storage  *storage.Storage
	Renderer *rankcard.Renderer
}
