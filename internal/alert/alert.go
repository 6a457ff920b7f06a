package alert

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// Alert is an operator-facing notification
type Alert struct {
	Kind       string
	CampaignID string
	Detail     string
	RaisedAt   time.Time
}

// Title returns a human title for the alert kind
func (a Alert) Title() string {
	if t, ok := kindTitles[a.Kind]; ok {
		return t
	}
	return a.Kind
}

// Notifier delivers alerts to operators
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// LogNotifier writes alerts to the structured log only
type LogNotifier struct{}

// Notify logs the alert at error level
func (LogNotifier) Notify(ctx context.Context, a Alert) error {
	logger.FromContext(ctx).Error(LogMsgAlertRaised,
		"kind", a.Kind,
		"campaign_id", a.CampaignID,
		"detail", a.Detail)
	return nil
}

// webhookExecutor is the slice of *discordgo.Session used for delivery
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts alerts as embeds to a Discord webhook
type DiscordNotifier struct {
	session   webhookExecutor
	webhookID string
	token     string
}

// NewDiscordNotifier parses https://discord.com/api/webhooks/{id}/{token}
func NewDiscordNotifier(webhookURL string) (*DiscordNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution needs no bot token.
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWebhookFailed, err)
	}
	return &DiscordNotifier{session: s, webhookID: id, token: token}, nil
}

// ParseWebhookURL extracts the webhook id and token
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}
	if u.Scheme != "https" || !strings.HasSuffix(u.Host, WebhookHost) || !strings.HasPrefix(u.Path, WebhookPathPrefix) {
		return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(u.Path, WebhookPathPrefix), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
	}
	return parts[0], parts[1], nil
}

// Notify sends the alert as a single embed
func (d *DiscordNotifier) Notify(ctx context.Context, a Alert) error {
	detail := a.Detail
	if len(detail) > MaxDetailLength {
		detail = detail[:MaxDetailLength]
	}

	embed := &discordgo.MessageEmbed{
		Title:       a.Title(),
		Description: detail,
		Color:       EmbedColorAlert,
		Timestamp:   a.RaisedAt.UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: EmbedFooterText},
	}
	if a.CampaignID != "" {
		embed.Fields = []*discordgo.MessageEmbedField{{Name: "Campaign", Value: a.CampaignID, Inline: true}}
	}

	if _, err := d.session.WebhookExecute(d.webhookID, d.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWebhookFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgAlertSent, "kind", a.Kind)
	return nil
}

// NewNotifier returns a DiscordNotifier when a webhook is configured, else a LogNotifier
func NewNotifier(webhookURL string) (Notifier, error) {
	if webhookURL == "" {
		return LogNotifier{}, nil
	}
	return NewDiscordNotifier(webhookURL)
}

// Subscribe forwards anomaly events on the bus to the notifier. The alert is
// always logged so the structured log stays authoritative when delivery fails.
func Subscribe(bus event.Bus, n Notifier) {
	bus.Subscribe(event.AnomalyDetected, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.AnomalyPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		a := Alert{Kind: p.Kind, CampaignID: p.CampaignID, Detail: p.Detail, RaisedAt: time.Unix(p.Timestamp, 0)}
		if _, isLog := n.(LogNotifier); !isLog {
			_ = LogNotifier{}.Notify(ctx, a)
		}
		return n.Notify(ctx, a)
	})
}
