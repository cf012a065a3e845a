package command

import (
	"fmt"
	"strconv"
	"strings"

	"levelbot/internal/bot"
	"levelbot/internal/level"

	"github.com/bwmarrin/discordgo"
)

type LevelSettingsCommand struct{}

func (c *LevelSettingsCommand) Name() string { return "levelsettings" }
func (c *LevelSettingsCommand) Description() string {
	return "Configure how leveling works on this server"
}

func (c *LevelSettingsCommand) Category() string { return "⚙️ Leveling Admin" }

func (c *LevelSettingsCommand) RequireAdmin() bool { return true }

func (c *LevelSettingsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minCooldown := float64(level.MinCooldownSeconds)
	maxCooldown := float64(level.MaxCooldownSeconds)
	minXP := float64(level.MinXPPerMessage)
	maxXP := float64(level.MaxXPPerMessage)
	minLevel := float64(1)

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show the current leveling configuration",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cooldown",
				Description: "Set how often a member can earn XP",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "seconds",
						Description: "Seconds between XP grants",
						Required:    true,
						MinValue:    &minCooldown,
						MaxValue:    maxCooldown,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "xpconfig",
				Description: "Set the random XP range granted per message",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "min",
						Description: "Smallest possible grant",
						Required:    true,
						MinValue:    &minXP,
						MaxValue:    maxXP,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "max",
						Description: "Largest possible grant",
						Required:    true,
						MinValue:    &minXP,
						MaxValue:    maxXP,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rankcardconfig",
				Description: "Customize the rank card look",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "background",
						Description: "Image URL, or 'default' for the plain background",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "color",
						Description: "Text color as a hex code like #FFFFFF",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "setrole",
				Description: "Grant a role when members reach a level",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "level",
						Description: "Level that earns the role",
						Required:    true,
						MinValue:    &minLevel,
					},
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to grant",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "clearrole",
				Description: "Stop granting a role at a level",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "level",
						Description: "Level to clear",
						Required:    true,
						MinValue:    &minLevel,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "ignorechannel",
				Description: "Toggle whether a channel grants XP",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Channel to toggle",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "messagechannel",
				Description: "Route level-up announcements to one channel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Announcement channel (omit to announce where the level-up happened)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "togglemessage",
				Description: "Turn level-up announcements on or off",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "Whether level-ups get announced",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *LevelSettingsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	i := slash.Event
	st := slash.Storage

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return respondEphemeral(s, i, "Pick a subcommand.")
	}
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "show":
		return c.runShow(slash)

	case "cooldown":
		seconds := opts["seconds"].IntValue()
		if err := level.SetCooldown(st, i.GuildID, uint32(seconds)); err != nil {
			return replyLevelError(s, i, err)
		}
		return respondEmbed(s, i, "Cooldown updated",
			fmt.Sprintf("Members now earn XP at most once every **%d** seconds.", seconds))

	case "xpconfig":
		min := opts["min"].IntValue()
		max := opts["max"].IntValue()
		if err := level.SetXPRange(st, i.GuildID, uint32(min), uint32(max)); err != nil {
			return replyLevelError(s, i, err)
		}
		return respondEmbed(s, i, "XP range updated",
			fmt.Sprintf("Each eligible message now grants between **%d** and **%d** XP.", min, max))

	case "rankcardconfig":
		background := opts["background"].StringValue()
		color := opts["color"].StringValue()
		if err := level.SetRankCard(st, i.GuildID, background, color); err != nil {
			return replyLevelError(s, i, err)
		}
		if background == "default" {
			return respondEmbed(s, i, "Rank card updated", "Back to the default background.")
		}
		return respondEmbed(s, i, "Rank card updated", "Custom background and text color saved.")

	case "setrole":
		lvl := opts["level"].IntValue()
		role := opts["role"].RoleValue(s, i.GuildID)
		if err := level.SetLevelRole(st, i.GuildID, uint32(lvl), role.ID); err != nil {
			return replyLevelError(s, i, err)
		}
		return respondEmbed(s, i, "Level role set",
			fmt.Sprintf("Reaching level **%d** now grants <@&%s>.", lvl, role.ID))

	case "clearrole":
		lvl := opts["level"].IntValue()
		if err := level.ClearLevelRole(st, i.GuildID, uint32(lvl)); err != nil {
			return replyLevelError(s, i, err)
		}
		return respondEmbed(s, i, "Level role cleared",
			fmt.Sprintf("Level **%d** no longer grants a role.", lvl))

	case "ignorechannel":
		channel := opts["channel"].ChannelValue(s)
		ignored, err := level.ToggleIgnoredChannel(st, i.GuildID, channel.ID)
		if err != nil {
			return replyLevelError(s, i, err)
		}
		if ignored {
			return respondEmbed(s, i, "Channel ignored",
				fmt.Sprintf("Messages in <#%s> no longer grant XP.", channel.ID))
		}
		return respondEmbed(s, i, "Channel restored",
			fmt.Sprintf("Messages in <#%s> grant XP again.", channel.ID))

	case "messagechannel":
		channelID := ""
		if opt, ok := opts["channel"]; ok {
			channelID = opt.ChannelValue(s).ID
		}
		if err := level.SetAnnounceChannel(st, i.GuildID, channelID); err != nil {
			return replyLevelError(s, i, err)
		}
		if channelID == "" {
			return respondEmbed(s, i, "Announcement channel cleared",
				"Level-ups announce in the channel where they happen.")
		}
		return respondEmbed(s, i, "Announcement channel set",
			fmt.Sprintf("Level-ups now announce in <#%s>.", channelID))

	case "togglemessage":
		enabled := opts["enabled"].BoolValue()
		if err := level.SetAnnouncementsEnabled(st, i.GuildID, enabled); err != nil {
			return replyLevelError(s, i, err)
		}
		if enabled {
			return respondEmbed(s, i, "Announcements on", "Level-ups get announced again.")
		}
		return respondEmbed(s, i, "Announcements off", "Members still earn XP, quietly.")

	default:
		return respondEphemeral(s, i, "Unknown subcommand.")
	}
}

func (c *LevelSettingsCommand) runShow(slash *SlashContext) error {
	s := slash.Session
	i := slash.Event

	cfg, err := slash.Storage.GuildConfig(i.GuildID)
	if err != nil {
		return replyLevelError(s, i, err)
	}

	announce := "in the channel where it happens"
	if cfg.LevelUpChannel != "" {
		announce = fmt.Sprintf("in <#%s>", cfg.LevelUpChannel)
	}
	if !cfg.LevelUpEnabled {
		announce = "disabled"
	}

	var roles []string
	for lvl, roleID := range cfg.LevelRoles {
		roles = append(roles, fmt.Sprintf("level %s → <@&%s>", lvl, roleID))
	}
	rolesLine := "none"
	if len(roles) > 0 {
		rolesLine = strings.Join(roles, ", ")
	}

	var ignored []string
	for _, ch := range cfg.IgnoredChannels {
		ignored = append(ignored, "<#"+ch+">")
	}
	ignoredLine := "none"
	if len(ignored) > 0 {
		ignoredLine = strings.Join(ignored, ", ")
	}

	background := "default"
	if cfg.RankCardBG != "" {
		background = cfg.RankCardBG
	}

	embed := &discordgo.MessageEmbed{
		Title: "📈 Leveling configuration",
		Color: bot.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "XP per message", Value: fmt.Sprintf("%d–%d", cfg.XPMin, cfg.XPMax), Inline: true},
			{Name: "Cooldown", Value: strconv.FormatUint(uint64(cfg.XPCooldownSeconds), 10) + "s", Inline: true},
			{Name: "Announcements", Value: announce, Inline: true},
			{Name: "Level roles", Value: rolesLine},
			{Name: "Ignored channels", Value: ignoredLine},
			{Name: "Rank card background", Value: background, Inline: true},
			{Name: "Rank card text color", Value: cfg.RankCardTextColor, Inline: true},
		},
	}
	return bot.RespondEmbed(s, i, embed)
}

func init() {
	Register(
		WithCommandLogger(
			WithGuildOnly(
				&LevelSettingsCommand{},
			),
		),
	)
}
