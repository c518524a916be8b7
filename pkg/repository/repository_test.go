package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/repository/firestore"
	"github.com/secmon-lab/continuum/pkg/repository/memory"
	"github.com/secmon-lab/continuum/pkg/repository/sqlite"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	repo := memory.New()
	gt.NoError(t, repo.Open(context.Background())).Required()
	return repo
}

func newSQLiteRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	repo := sqlite.New(filepath.Join(t.TempDir(), "continuum.db"))
	gt.NoError(t, repo.Open(context.Background())).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	opts := []firestore.Option{
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%d", time.Now().UnixNano())),
	}
	if databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID"); databaseID != "" {
		opts = append(opts, firestore.WithDatabaseID(databaseID))
	}

	repo := firestore.New(projectID, opts...)
	gt.NoError(t, repo.Open(context.Background())).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func runAllRepositoryTests(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("Resource", func(t *testing.T) { runResourceRepositoryTest(t, newRepo) })
	t.Run("Activity", func(t *testing.T) { runActivityRepositoryTest(t, newRepo) })
	t.Run("Risk", func(t *testing.T) { runRiskRepositoryTest(t, newRepo) })
	t.Run("Strategy", func(t *testing.T) { runStrategyRepositoryTest(t, newRepo) })
}

func TestMemoryRepository(t *testing.T) {
	runAllRepositoryTests(t, newMemoryRepository)
}

func TestSQLiteRepository(t *testing.T) {
	runAllRepositoryTests(t, newSQLiteRepository)
}

func TestFirestoreRepository(t *testing.T) {
	runAllRepositoryTests(t, newFirestoreRepository)
}
