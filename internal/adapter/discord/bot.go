package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"leetbot/internal/domain/model"
	"leetbot/internal/domain/ports"
	"leetbot/internal/usecase"
)

const (
	CommandDaily       = "daily"
	CommandQuestion    = "question"
	CommandSearch      = "search"
	CommandStats       = "stats"
	CommandRegister    = "register"
	CommandLeaderboard = "leaderboard"
)

// Commands are answered within this window; it also bounds backoff retries
// on the stats path.
const commandTimeout = 2 * time.Minute

var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        CommandDaily,
		Description: "Show today's daily challenge",
	},
	{
		Name:        CommandQuestion,
		Description: "Show a random question, optionally filtered by difficulty",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "difficulty",
				Description: "Difficulty filter",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Easy", Value: "EASY"},
					{Name: "Medium", Value: "MEDIUM"},
					{Name: "Hard", Value: "HARD"},
					{Name: "Random", Value: "RANDOM"},
				},
			},
		},
	},
	{
		Name:        CommandSearch,
		Description: "Search for a question by keywords",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Keywords to search for",
				Required:    true,
			},
		},
	},
	{
		Name:        CommandStats,
		Description: "Show solve statistics for a LeetCode user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "LeetCode username (defaults to your registered one)",
			},
		},
	},
	{
		Name:        CommandRegister,
		Description: "Link your LeetCode username for stats and the leaderboard",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "Your LeetCode username",
				Required:    true,
			},
		},
	},
	{
		Name:        CommandLeaderboard,
		Description: "Show the server leaderboard",
	},
}

// Config carries the Discord-facing settings.
type Config struct {
	Token             string
	GuildID           string
	AnnounceChannelID string
}

// Bot owns the Discord session and routes slash commands to the use cases.
type Bot struct {
	session     *discordgo.Session
	questions   *usecase.Questions
	leaderboard *usecase.Leaderboard
	logger      ports.Logger

	guildID           string
	announceChannelID string
}

var _ ports.Announcer = (*Bot)(nil)

// NewBot creates the session and wires the interaction handler. The session
// is not opened until Open is called.
func NewBot(cfg Config, questions *usecase.Questions, leaderboard *usecase.Leaderboard, logger ports.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session:           session,
		questions:         questions,
		leaderboard:       leaderboard,
		logger:            logger,
		guildID:           cfg.GuildID,
		announceChannelID: cfg.AnnounceChannelID,
	}

	session.AddHandler(bot.handleInteraction)
	session.Identify.Intents = discordgo.IntentsGuilds

	return bot, nil
}

// Open connects to the gateway and registers the slash commands.
func (b *Bot) Open(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	for _, cmd := range commandDefinitions {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			return fmt.Errorf("register command %s: %w", cmd.Name, err)
		}
	}

	b.logger.Info(ctx, "discord session ready", "commands", len(commandDefinitions))
	return nil
}

// Close shuts the gateway connection down.
func (b *Bot) Close() error {
	return b.session.Close()
}

// Announce posts a notification to the configured announcement channel.
func (b *Bot) Announce(ctx context.Context, notification model.Notification) error {
	if b.announceChannelID == "" {
		return fmt.Errorf("announcement channel not configured")
	}
	if _, err := b.session.ChannelMessageSendEmbed(b.announceChannelID, buildEmbed(notification)); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}
	b.logger.Info(ctx, "announcement sent", "channel", b.announceChannelID)
	return nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	data := i.ApplicationCommandData()

	// Fetches can take a while, so defer the reply and edit it later.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error(ctx, "defer interaction failed", "command", data.Name, "error", err)
		return
	}

	notification := b.dispatch(ctx, i, data)

	embeds := []*discordgo.MessageEmbed{buildEmbed(notification)}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		b.logger.Error(ctx, "edit interaction response failed", "command", data.Name, "error", err)
	}
}

func (b *Bot) dispatch(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) model.Notification {
	switch data.Name {
	case CommandDaily:
		return b.questions.Daily(ctx)
	case CommandQuestion:
		return b.questions.Random(ctx, model.ParseDifficulty(optionValue(data, "difficulty")))
	case CommandSearch:
		return b.questions.Search(ctx, optionValue(data, "text"))
	case CommandStats:
		return b.leaderboard.Stats(ctx, interactionUserID(i), optionValue(data, "username"))
	case CommandRegister:
		return b.leaderboard.Register(ctx, interactionUserID(i), optionValue(data, "username"))
	case CommandLeaderboard:
		return b.leaderboard.Board(ctx)
	default:
		b.logger.Warn(ctx, "unknown command", "command", data.Name)
		return usecase.FailureNotification()
	}
}

func optionValue(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
