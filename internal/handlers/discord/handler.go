package discord

//go:generate mockgen -destination=mock/mock_session.go -package=mockdiscord -source=handler.go

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	classservice "github.com/KirkDiggler/nexus-classes/internal/services/classes"
)

// CommandName is the root slash command
const CommandName = "nexusclass"

// Subcommands of /nexusclass
const (
	SubcommandSet   = "set"
	SubcommandGet   = "get"
	SubcommandWorld = "world"
	SubcommandDebug = "debug"
)

// Session is the part of *discordgo.Session the handler uses
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	Classes classservice.Service
	AppID   string
}

// Handler serves the /nexusclass admin command. It only touches the class
// registry through the service; item grants need a live inventory and are
// left to the host.
type Handler struct {
	classes classservice.Service
	appID   string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.Classes == nil {
		panic("class service is required")
	}

	return &Handler{
		classes: cfg.Classes,
		appID:   cfg.AppID,
	}
}

// Commands returns the application commands the handler serves
func Commands() []*discordgo.ApplicationCommand {
	manageGuild := int64(discordgo.PermissionManageGuild)

	classChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(classes.All))
	for _, c := range classes.All {
		classChoices = append(classChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.String(),
			Value: strings.ToLower(c.String()),
		})
	}

	participant := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "participant",
		Description: "Participant UUID",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandName,
			Description:              "Manage Nexus classes",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        SubcommandSet,
					Description: "Set a participant's class",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						participant,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "class",
							Description: "Class to assign",
							Required:    true,
							Choices:     classChoices,
						},
					},
				},
				{
					Name:        SubcommandGet,
					Description: "Get a participant's class",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{participant},
				},
				{
					Name:        SubcommandWorld,
					Description: "Enable, disable or check class effects in a region",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "region",
							Description: "Region UUID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Leave empty to check the current state",
						},
					},
				},
				{
					Name:        SubcommandDebug,
					Description: "Toggle debug messages for a participant",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						participant,
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Whether debug messages are sent",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers the slash commands, globally when guildID is empty
func (h *Handler) RegisterCommands(s Session, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(h.appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}

// HandleInteraction handles /nexusclass interactions and ignores the rest
func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != CommandName || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	content, err := h.run(context.Background(), sub)
	if err != nil {
		log.Printf("Discord: /%s %s failed: %v", CommandName, sub.Name, err)
		content = fmt.Sprintf("❌ %s", err.Error())
	}

	if err := respond(s, i, content); err != nil {
		log.Printf("Discord: Failed to respond to /%s %s: %v", CommandName, sub.Name, err)
	}
}

func (h *Handler) run(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	opts := optionMap(sub)

	switch sub.Name {
	case SubcommandSet:
		state, err := h.classes.AssignClass(ctx, stringOption(opts, "participant"), stringOption(opts, "class"))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Set %s's class to %s", state.ID, state.Class), nil

	case SubcommandGet:
		id := stringOption(opts, "participant")
		class, err := h.classes.QueryClass(ctx, id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s's class is %s", id, class), nil

	case SubcommandWorld:
		region := stringOption(opts, "region")
		opt, set := opts["enabled"]
		if !set {
			enabled, err := h.classes.QueryRegionEnabled(ctx, region)
			if err != nil {
				return "", err
			}
			if enabled {
				return fmt.Sprintf("Class effects are enabled in %s", region), nil
			}
			return fmt.Sprintf("Class effects are disabled in %s", region), nil
		}

		enabled := opt.BoolValue()
		if err := h.classes.SetRegionEnabled(ctx, region, enabled); err != nil {
			return "", err
		}
		if enabled {
			return fmt.Sprintf("Class effects enabled for %s", region), nil
		}
		return fmt.Sprintf("Class effects disabled for %s", region), nil

	case SubcommandDebug:
		enabled := false
		if opt, ok := opts["enabled"]; ok {
			enabled = opt.BoolValue()
		}
		state, err := h.classes.SetPreference(ctx, stringOption(opts, "participant"), registry.PreferenceDebugFeedback, enabled)
		if err != nil {
			return "", err
		}
		if enabled {
			return fmt.Sprintf("%s will now receive debug messages", state.ID), nil
		}
		return fmt.Sprintf("%s will no longer receive debug messages", state.ID), nil

	default:
		return "", fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

func respond(s Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func optionMap(sub *discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}
	return opts
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}
