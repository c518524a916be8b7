package memory

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory keeps every record in process. Nothing survives a restart.
type Memory struct {
	resource *resourceRepository
	activity *activityRepository
	risk     *riskRepository
	strategy *strategyRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		resource: newResourceRepository(),
		activity: newActivityRepository(),
		risk:     newRiskRepository(),
		strategy: newStrategyRepository(),
	}
}

// Open is a no-op; the maps are ready from New
func (m *Memory) Open(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) Resource() interfaces.ResourceRepository {
	return m.resource
}

func (m *Memory) Activity() interfaces.ActivityRepository {
	return m.activity
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Strategy() interfaces.StrategyRepository {
	return m.strategy
}
