package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"statusfeed/internal/config"
	"statusfeed/internal/credentials"
	"statusfeed/internal/repository"
	"statusfeed/pkg/db"
)

// setupTestDB opens a throwaway sqlite file through the real pkg/db path
// so migrations and the foreign_keys pragma match production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxIdleConns = 2
	cfg.Database.MaxOpenConns = 1
	cfg.Database.ConnMaxLifetime = 60

	gdb, cleanup, err := db.NewSQLite(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return gdb
}

type testEnv struct {
	users    *UserServiceImpl
	statuses *StatusServiceImpl

	userRepo   repository.UserRepository
	statusRepo repository.StatusRepository
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	gdb := setupTestDB(t)
	userRepo := repository.NewUserRepository(gdb)
	statusRepo := repository.NewStatusRepository(gdb)

	return &testEnv{
		users:      NewUserService(userRepo, credentials.Plaintext{}),
		statuses:   NewStatusService(statusRepo, userRepo),
		userRepo:   userRepo,
		statusRepo: statusRepo,
	}
}
