package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/service/suggest"
	"github.com/secmon-lab/continuum/pkg/utils/async"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
)

// SuggestionUseCase drafts activity fields with the AI suggestion service.
// It never reads or writes the store.
type SuggestionUseCase struct {
	svc suggest.Service
}

func NewSuggestionUseCase(svc suggest.Service) *SuggestionUseCase {
	return &SuggestionUseCase{svc: svc}
}

// Enabled reports whether a suggestion service is configured
func (uc *SuggestionUseCase) Enabled() bool {
	return uc.svc != nil
}

// Suggest validates the input and calls the service. Without a configured service
// it returns nil, nil so callers can keep the current form values.
func (uc *SuggestionUseCase) Suggest(ctx context.Context, activityName, department string) (*model.Suggestion, error) {
	if activityName == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "activity name is required for suggestions",
			goerr.V(model.FieldKey, "name"), goerr.T(model.ErrTagValidation))
	}
	if department == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "department is required for suggestions",
			goerr.V(model.FieldKey, "department"), goerr.T(model.ErrTagValidation))
	}

	if uc.svc == nil {
		logging.From(ctx).Warn("no AI suggestion service configured, skipping suggestion",
			"activity", activityName)
		return nil, nil
	}

	s, err := uc.svc.Suggest(ctx, suggest.Input{ActivityName: activityName, Department: department})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get AI suggestion",
			goerr.V("activity", activityName),
			goerr.V("department", department),
			goerr.T(model.ErrTagSuggestionFailed))
	}
	return s, nil
}

// SuggestionResult is delivered by SuggestAsync
type SuggestionResult struct {
	Suggestion *model.Suggestion
	Err        error
}

// SuggestAsync runs Suggest in the background and delivers exactly one result on
// the returned channel. The call is not cancelled with ctx; a caller that lost
// interest simply stops reading.
func (uc *SuggestionUseCase) SuggestAsync(ctx context.Context, activityName, department string) <-chan SuggestionResult {
	ch := make(chan SuggestionResult, 1)
	async.Dispatch(ctx, func(ctx context.Context) error {
		s, err := uc.Suggest(ctx, activityName, department)
		ch <- SuggestionResult{Suggestion: s, Err: err}
		return nil
	})
	return ch
}
