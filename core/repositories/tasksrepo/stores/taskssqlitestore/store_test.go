package taskssqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/tasksrepotest"
	"github.com/jrazmi/crudkit/infrastructure/sqlitedb"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	db, err := sqlitedb.Open(sqlitedb.Options{Path: filepath.Join(t.TempDir(), "tasks.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlitedb.Migrate(context.Background(), db, logger.NewDiscard().Logger))

	tasksrepotest.Run(t, taskssqlitestore.NewStore(logger.NewDiscard(), db))
}
