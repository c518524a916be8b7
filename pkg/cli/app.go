package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/cli/config"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/usecase"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// appConfig groups the flags shared by the commands working on records
type appConfig struct {
	repo     config.Repository
	settings config.Settings
	gemini   config.Gemini
	export   config.Export
	slack    config.Slack
}

func (x *appConfig) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.repo.Flags()...)
	flags = append(flags, x.settings.Flags()...)
	flags = append(flags, x.gemini.Flags()...)
	flags = append(flags, x.export.Flags()...)
	flags = append(flags, x.slack.Flags()...)
	return flags
}

// build wires the use cases. The caller must close the returned repository.
func (x *appConfig) build(ctx context.Context) (*usecase.UseCases, interfaces.Repository, error) {
	logger := logging.Default()

	settings, err := x.settings.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load settings")
	}

	suggestSvc, err := x.gemini.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	sink, err := x.export.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure report export")
	}

	slackSvc, err := x.slack.Configure()
	if err != nil {
		return nil, nil, err
	}

	repo, err := x.repo.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	opts := []usecase.Option{
		usecase.WithSettings(settings),
		usecase.WithStrictReferences(x.settings.StrictReferences()),
	}
	if suggestSvc != nil {
		opts = append(opts, usecase.WithSuggestService(suggestSvc))
		logger.Info("AI suggestions enabled", "gemini", x.gemini)
	} else {
		logger.Info("Gemini project not configured, AI suggestions are disabled")
	}
	if sink != nil {
		opts = append(opts, usecase.WithReportSink(sink))
	}
	if slackSvc != nil {
		opts = append(opts, usecase.WithSlack(slackSvc, x.slack.ChannelID()))
	}

	return usecase.New(repo, opts...), repo, nil
}

func closeRepository(repo interfaces.Repository) {
	if err := repo.Close(); err != nil {
		logging.Default().Error("failed to close repository", "error", err.Error())
	}
}

func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
