package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	slacksvc "github.com/secmon-lab/demote/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Notify holds Slack notification settings for finished runs
type Notify struct {
	SlackWebhookURL string
	SlackOAuthToken string
	SlackChannel    string
}

// Flags returns CLI flags for Notify configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("DEMOTE_SLACK_WEBHOOK_URL"),
			Destination: &n.SlackWebhookURL,
		},
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token for run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("DEMOTE_SLACK_OAUTH_TOKEN"),
			Destination: &n.SlackOAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID used with --slack-oauth-token",
			Category:    "Slack",
			Sources:     cli.EnvVars("DEMOTE_SLACK_CHANNEL"),
			Destination: &n.SlackChannel,
		},
	}
}

// Configure returns a notifier, or nil when Slack is not configured.
// The bot token takes precedence over the webhook.
func (n *Notify) Configure() (interfaces.Notifier, error) {
	switch {
	case n.SlackOAuthToken != "":
		if n.SlackChannel == "" {
			return nil, goerr.New("--slack-channel is required with --slack-oauth-token")
		}
		return slacksvc.NewBotNotifier(n.SlackOAuthToken, n.SlackChannel), nil
	case n.SlackWebhookURL != "":
		return slacksvc.NewWebhookNotifier(n.SlackWebhookURL, nil), nil
	default:
		return nil, nil
	}
}

// LogValue returns structured log value. Secrets are not logged.
func (n Notify) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("webhook", n.SlackWebhookURL != ""),
		slog.Bool("bot", n.SlackOAuthToken != ""),
		slog.String("channel", n.SlackChannel),
	)
}
