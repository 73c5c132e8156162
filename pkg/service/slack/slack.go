package slack

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts run summaries to Slack, either through an incoming
// webhook or through the Web API with a bot token and channel.
type Notifier struct {
	webhookURL string
	httpClient *http.Client

	client    *slack.Client
	channelID string
}

// NewWebhookNotifier creates a Notifier posting to an incoming webhook URL
func NewWebhookNotifier(webhookURL string, httpClient *http.Client) *Notifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

// NewBotNotifier creates a Notifier posting with a bot token to channelID
func NewBotNotifier(token, channelID string, opts ...slack.Option) *Notifier {
	return &Notifier{
		client:    slack.New(token, opts...),
		channelID: channelID,
	}
}

// NotifyRunCompleted posts the summary of a finished run
func (n *Notifier) NotifyRunCompleted(ctx context.Context, summary *model.RunSummary) error {
	text := fmt.Sprintf("Role change run %s %s", summary.RunID, summary.Message())
	attachment := buildSummaryAttachment(summary)

	if n.client != nil {
		_, _, err := n.client.PostMessageContext(ctx, n.channelID,
			slack.MsgOptionText(text, false),
			slack.MsgOptionAttachments(attachment),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to post message to Slack",
				goerr.V("channel", n.channelID))
		}
		return nil
	}

	msg := &slack.WebhookMessage{
		Text:        text,
		Attachments: []slack.Attachment{attachment},
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}
	return nil
}

func buildSummaryAttachment(summary *model.RunSummary) slack.Attachment {
	color := "good"
	switch {
	case summary.Canceled:
		color = "#9e9e9e"
	case summary.Stats.Success == 0:
		color = "danger"
	case summary.Stats.Failed > 0:
		color = "warning"
	}

	return slack.Attachment{
		Color: color,
		Title: summary.Message(),
		Fields: []slack.AttachmentField{
			{Title: "Role", Value: summary.Role.DisplayName(), Short: true},
			{Title: "Total", Value: strconv.Itoa(summary.Stats.Total), Short: true},
			{Title: "Succeeded", Value: strconv.Itoa(summary.Stats.Success), Short: true},
			{Title: "Failed", Value: strconv.Itoa(summary.Stats.Failed), Short: true},
		},
		Footer: "took " + summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond).String(),
	}
}
