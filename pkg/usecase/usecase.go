package usecase

import (
	"time"

	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/service/export"
	"github.com/secmon-lab/continuum/pkg/service/slack"
	"github.com/secmon-lab/continuum/pkg/service/suggest"
)

type UseCases struct {
	repo         interfaces.Repository
	settings     *model.Settings
	suggest      suggest.Service
	sink         export.Sink
	slackService slack.Service
	slackChannel string
	strict       bool
	now          func() time.Time

	Record     *RecordUseCase
	Report     *ReportUseCase
	Suggestion *SuggestionUseCase
}

type Option func(*UseCases)

// WithSettings sets the organization settings used by reports
func WithSettings(settings *model.Settings) Option {
	return func(uc *UseCases) {
		uc.settings = settings
	}
}

// WithSuggestService enables AI suggestions
func WithSuggestService(svc suggest.Service) Option {
	return func(uc *UseCases) {
		uc.suggest = svc
	}
}

// WithReportSink stores rendered reports on publish
func WithReportSink(sink export.Sink) Option {
	return func(uc *UseCases) {
		uc.sink = sink
	}
}

// WithSlack posts report summaries to the channel on publish
func WithSlack(svc slack.Service, channelID string) Option {
	return func(uc *UseCases) {
		uc.slackService = svc
		uc.slackChannel = channelID
	}
}

// WithStrictReferences rejects records referring to ids missing from the state
func WithStrictReferences(strict bool) Option {
	return func(uc *UseCases) {
		uc.strict = strict
	}
}

// WithClock replaces time.Now for report timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		settings: model.DefaultSettings(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Record = NewRecordUseCase(repo, uc.strict)
	uc.Report = NewReportUseCase(uc.settings, uc.sink, uc.slackService, uc.slackChannel, uc.now)
	uc.Suggestion = NewSuggestionUseCase(uc.suggest)

	return uc
}
