package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrStrategyNotFound = goerr.New("strategy not found")
)

// Context keys for error values
const (
	ResourceIDKey = "resource_id"
	ActivityIDKey = "activity_id"
	RiskIDKey     = "risk_id"
	StrategyIDKey = "strategy_id"
)
