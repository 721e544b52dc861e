package main

import (
	"context"
	"testing"

	"github.com/phrazzld/task-api/internal/platform/database"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	db := testdb.Open(t)
	logBuf, log := logger.NewTestLogger(t)
	ctx := context.Background()

	for _, cmd := range []string{"status", "version", "down", "up"} {
		require.NoError(t, runMigrations(ctx, db, database.DriverSQLite, cmd, log), cmd)
	}
	logger.AssertLogContains(t, logBuf, "running migrations")

	err := runMigrations(ctx, db, database.DriverSQLite, "sideways", log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}
