package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// WithGuildOnly rejects invocations from DMs.
func WithGuildOnly(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if slash, ok := ctx.(*SlashContext); ok && slash.Event.GuildID == "" {
				return respondEphemeral(slash.Session, slash.Event, "This command only works inside a server.")
			}
			return cmd.Run(ctx)
		},
	}
}

// WithAdminOnly rejects members without the Administrator permission.
func WithAdminOnly(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if slash, ok := ctx.(*SlashContext); ok && !isAdministrator(slash.Event.Member) {
				return respondEphemeral(slash.Session, slash.Event, "You need the Administrator permission to use this command.")
			}
			return cmd.Run(ctx)
		},
	}
}

// WithCommandLogger logs every invocation before running it.
func WithCommandLogger(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if slash, ok := ctx.(*SlashContext); ok && slash.Event.Member != nil {
				log.Printf("[INFO] [%s] /%s by %s", slash.Event.GuildID, cmd.Name(), slash.Event.Member.User.Username)
			}
			return cmd.Run(ctx)
		},
	}
}

func isAdministrator(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	return member.Permissions&discordgo.PermissionAdministrator != 0
}
