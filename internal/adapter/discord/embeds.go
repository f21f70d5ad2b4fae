package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"leetbot/internal/domain/model"
)

// Discord embed limits.
const (
	maxTitle       = 256
	maxDescription = 4096
	maxFieldValue  = 1024
	maxFooter      = 2048
)

// buildEmbed renders a notification as a Discord embed, truncating every
// part to the platform's limits. Empty fields are dropped; Discord rejects
// them.
func buildEmbed(n model.Notification) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(n.Title, maxTitle),
		URL:         n.URL,
		Description: truncate(n.Description, maxDescription),
		Color:       n.Color,
	}

	for _, field := range n.Fields {
		if field.Value == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   truncate(field.Name, maxTitle),
			Value:  truncate(field.Value, maxFieldValue),
			Inline: field.Inline,
		})
	}

	if n.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(n.Footer, maxFooter)}
	}

	return embed
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}
