package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	botToken  string
	channelID string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for report notifications)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("CONTINUUM_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving report summaries",
			Category:    "Slack",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("CONTINUUM_SLACK_CHANNEL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channelID),
	)
}

// IsConfigured returns true if a bot token is set
func (x *Slack) IsConfigured() bool {
	return x.botToken != ""
}

// ChannelID returns the channel receiving report summaries
func (x *Slack) ChannelID() string {
	return x.channelID
}

// Configure returns the Slack service, or nil when no bot token is given
func (x *Slack) Configure(opts ...slack.Option) (slack.Service, error) {
	if x.botToken == "" {
		return nil, nil
	}
	if x.channelID == "" {
		return nil, goerr.Wrap(ErrMissingChannel, "set --slack-channel to post report summaries")
	}

	svc, err := slack.New(x.botToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack service")
	}
	return svc, nil
}
