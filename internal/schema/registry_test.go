package schema

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

func newTestRegistry(t *testing.T, failFast bool) (*Registry, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	provider := store.NewProviderWithDB(db, logger.Nop())
	return NewRegistry(provider, failFast, logger.Nop()), mock
}

func expectBaseline(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS organizations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_users_org_id").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestEnsureForPath_RunsDDLOnce(t *testing.T) {
	registry, mock := newTestRegistry(t, false)

	expectBaseline(mock)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_jobs_org_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, registry.EnsureForPath(context.Background(), "/api/jobs"))

	// Second pass must not touch the database at all.
	require.NoError(t, registry.EnsureForPath(context.Background(), "/api/jobs/5"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureForPath_ConcurrentColdStart(t *testing.T) {
	registry, mock := newTestRegistry(t, true)

	expectBaseline(mock)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_jobs_org_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for n := 0; n < callers; n++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, registry.EnsureForPath(context.Background(), "/api/jobs"))
		}()
	}
	wg.Wait()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureForPath_BaselineOnlyForAuthRoutes(t *testing.T) {
	registry, mock := newTestRegistry(t, true)

	expectBaseline(mock)

	require.NoError(t, registry.EnsureForPath(context.Background(), "/api/auth/login"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureForPath_FailFastRejects(t *testing.T) {
	registry, mock := newTestRegistry(t, true)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS organizations").
		WillReturnError(errors.New("connection refused"))

	err := registry.EnsureForPath(context.Background(), "/api/jobs")
	assert.ErrorIs(t, err, ErrSchemaInit)
}

func TestEnsureForPath_ContinueLogsAndRetries(t *testing.T) {
	registry, mock := newTestRegistry(t, false)

	// First pass: organizations fails, the rest succeed.
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS organizations").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_users_org_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, registry.EnsureForPath(context.Background(), "/api/auth/login"))

	// Next request retries the failed table only.
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS organizations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, registry.EnsureForPath(context.Background(), "/api/auth/login"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
