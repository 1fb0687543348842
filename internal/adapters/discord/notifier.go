package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
	pkgdiscord "admintools/pkg/discord"
)

var _ output.Notifier = (*WebhookNotifier)(nil)

// WebhookNotifier posts the audit summary to a Discord channel webhook.
type WebhookNotifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
	username  string
}

// NewWebhookNotifier parses a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}.
func NewWebhookNotifier(webhookURL string) (*WebhookNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution is authenticated by the token in the URL.
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &WebhookNotifier{
		session:   s,
		webhookID: id,
		token:     token,
		username:  "i18n-audit",
	}, nil
}

// Notify sends one message carrying the audit embed.
func (n *WebhookNotifier) Notify(ctx context.Context, report *entities.AuditReport) error {
	params := &discordgo.WebhookParams{
		Username: n.username,
		Embeds:   []*discordgo.MessageEmbed{pkgdiscord.BuildAuditEmbed(report)},
	}
	if _, err := n.session.WebhookExecute(n.webhookID, n.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}

// ParseWebhookURL extracts the webhook id and token.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("discord webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("discord webhook url: expected /api/webhooks/{id}/{token}, got %q", u.Path)
}
