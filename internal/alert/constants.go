package alert

// Discord webhook settings
const (
	WebhookHost       = "discord.com"
	WebhookPathPrefix = "/api/webhooks/"
	EmbedColorAlert   = 0xe74c3c // Red
	EmbedFooterText   = "Review Lottery"
	MaxDetailLength   = 4000
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
	ErrMsgWebhookFailed     = "discord webhook execute failed"
)

// Log messages
const (
	LogMsgAlertRaised = "Operator alert raised"
	LogMsgAlertSent   = "Operator alert delivered to discord"
)

// Titles by anomaly kind
var kindTitles = map[string]string{
	"zero_probability_mass":  "Prize pool has no probability mass",
	"dangling_participation": "Participation without a claim",
}
