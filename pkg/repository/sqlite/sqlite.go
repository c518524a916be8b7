package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultPath is the database file used when no path is configured
const DefaultPath = "continuum.db"

// Table names, one per record kind
const (
	tableResources  = "resources"
	tableActivities = "activities"
	tableRisks      = "risks"
	tableStrategies = "strategies"
)

var tableNames = []string{tableResources, tableActivities, tableRisks, tableStrategies}

// SQLite stores each record kind in its own table as JSON payloads keyed by id
type SQLite struct {
	path string

	mu sync.RWMutex
	db *sql.DB

	resource *resourceRepository
	activity *activityRepository
	risk     *riskRepository
	strategy *strategyRepository
}

var _ interfaces.Repository = &SQLite{}

// New returns a store for the database file at path. Nothing is touched until Open.
func New(path string) *SQLite {
	if path == "" {
		path = DefaultPath
	}

	s := &SQLite{path: path}
	s.resource = &resourceRepository{table: newTable(s, tableResources, func(r *model.Resource) string { return r.ID })}
	s.activity = &activityRepository{table: newTable(s, tableActivities, func(a *model.Activity) string { return a.ID })}
	s.risk = &riskRepository{table: newTable(s, tableRisks, func(r *model.Risk) string { return r.ID })}
	s.strategy = &strategyRepository{table: newTable(s, tableStrategies, func(st *model.RecoveryStrategy) string { return st.ID })}
	return s
}

// Path returns the configured database path
func (s *SQLite) Path() string { return s.path }

// Open creates the database file and the tables if they do not exist.
// Calling Open on an open store does nothing.
func (s *SQLite) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return goerr.Wrap(err, "failed to create database directory",
				goerr.V("path", s.path), goerr.T(model.ErrTagStoreUnavailable))
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return goerr.Wrap(err, "failed to open sqlite", goerr.V("path", s.path), goerr.T(model.ErrTagStoreUnavailable))
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	for _, name := range tableNames {
		query := `CREATE TABLE IF NOT EXISTS ` + name + ` (
			id TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`
		if _, err := db.ExecContext(ctx, query); err != nil {
			_ = db.Close()
			return goerr.Wrap(err, "failed to create table",
				goerr.V("table", name), goerr.V("path", s.path), goerr.T(model.ErrTagStoreUnavailable))
		}
	}

	s.db = db
	return nil
}

func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return goerr.Wrap(err, "failed to close sqlite", goerr.V("path", s.path))
	}
	return nil
}

func (s *SQLite) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, goerr.Wrap(model.ErrStoreNotOpen, "sqlite store is not open",
			goerr.V("path", s.path), goerr.T(model.ErrTagStoreUnavailable))
	}
	return s.db, nil
}

func (s *SQLite) Resource() interfaces.ResourceRepository {
	return s.resource
}

func (s *SQLite) Activity() interfaces.ActivityRepository {
	return s.activity
}

func (s *SQLite) Risk() interfaces.RiskRepository {
	return s.risk
}

func (s *SQLite) Strategy() interfaces.StrategyRepository {
	return s.strategy
}
