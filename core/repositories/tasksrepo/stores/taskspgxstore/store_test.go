package taskspgxstore_test

import (
	"testing"

	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/tasksrepotest"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb/postgresdbtest"
	"github.com/jrazmi/crudkit/sdk/logger"
)

func TestStore(t *testing.T) {
	pool := postgresdbtest.NewPool(t)
	tasksrepotest.Run(t, taskspgxstore.NewStore(logger.NewDiscard(), pool))
}
