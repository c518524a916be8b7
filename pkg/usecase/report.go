package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/service/export"
	"github.com/secmon-lab/continuum/pkg/service/report"
	"github.com/secmon-lab/continuum/pkg/service/slack"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
	goslack "github.com/slack-go/slack"
)

// ReportUseCase compiles the compliance report and publishes it to the configured sinks
type ReportUseCase struct {
	settings     *model.Settings
	sink         export.Sink
	slackService slack.Service
	slackChannel string
	now          func() time.Time
}

func NewReportUseCase(settings *model.Settings, sink export.Sink, slackService slack.Service, slackChannel string, now func() time.Time) *ReportUseCase {
	if settings == nil {
		settings = model.DefaultSettings()
	}
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{
		settings:     settings,
		sink:         sink,
		slackService: slackService,
		slackChannel: slackChannel,
		now:          now,
	}
}

// Settings returns the organization settings the report is compiled with
func (uc *ReportUseCase) Settings() *model.Settings {
	return uc.settings
}

// Compile builds the report from the current state
func (uc *ReportUseCase) Compile(state *model.State) *model.Report {
	return model.CompileReport(uc.settings, state.Activities, state.Risks, state.Strategies, uc.now().UTC())
}

// Markdown renders the report as a markdown document
func (uc *ReportUseCase) Markdown(r *model.Report) ([]byte, error) {
	return report.RenderMarkdown(r)
}

// PublishResult tells where a report went
type PublishResult struct {
	Location  string `json:"location,omitempty"`
	SlackTS   string `json:"slackTs,omitempty"`
	Published bool   `json:"published"`
}

// Publish stores the rendered report in the sink and posts a summary to Slack.
// Either target is skipped when it is not configured.
func (uc *ReportUseCase) Publish(ctx context.Context, r *model.Report) (*PublishResult, error) {
	logger := logging.From(ctx)
	result := &PublishResult{}

	if uc.sink != nil {
		md, err := uc.Markdown(r)
		if err != nil {
			return nil, err
		}
		loc, err := uc.sink.Put(ctx, report.FileName(r), md)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to export report")
		}
		result.Location = loc
		result.Published = true
		logger.Info("report exported", "location", loc)
	}

	if uc.slackService != nil && uc.slackChannel != "" {
		blocks := buildReportBlocks(r, result.Location)
		ts, err := uc.slackService.PostMessage(ctx, uc.slackChannel, blocks, reportFallbackText(r))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to notify report", goerr.V("channel_id", uc.slackChannel))
		}
		result.SlackTS = ts
		result.Published = true
		logger.Info("report posted to Slack", "channel_id", uc.slackChannel, "ts", ts)
	}

	return result, nil
}

func reportFallbackText(r *model.Report) string {
	return fmt.Sprintf("Business Continuity Report for %s: readiness %d%%, coverage %d%%", r.Organization, r.Readiness, r.Coverage)
}

// buildReportBlocks constructs Block Kit blocks for the report summary message
func buildReportBlocks(r *model.Report, location string) []goslack.Block {
	blocks := []goslack.Block{
		goslack.NewHeaderBlock(
			goslack.NewTextBlockObject(goslack.PlainTextType, "Business Continuity Report: "+r.Organization, true, false),
		),
		goslack.NewSectionBlock(nil, []*goslack.TextBlockObject{
			goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Total Activities*\n%d", r.TotalActivities), false, false),
			goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*High Risks*\n%d", r.HighRisks), false, false),
			goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Strategy Coverage*\n%d%%", r.Coverage), false, false),
			goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Readiness*\n%d%%", r.Readiness), false, false),
		}, nil),
	}

	var uncovered []string
	for _, a := range r.KeyActivities {
		if !a.HasStrategy() {
			uncovered = append(uncovered, fmt.Sprintf("• %s (%s, RTO %s)", a.Name, a.Priority, a.RTO))
		}
	}
	if len(uncovered) > 0 {
		text := "*Key activities without a selected strategy*"
		for _, line := range uncovered {
			text += "\n" + line
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		))
	}

	contextText := fmt.Sprintf("%s  |  Generated %s", r.Standard, r.GeneratedAt.Format("2006-01-02"))
	if location != "" {
		contextText += "  |  " + location
	}
	blocks = append(blocks, goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType, contextText, false, false),
	))

	return blocks
}
