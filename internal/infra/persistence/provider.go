// Package persistence selects the storage driver named in the configuration.
package persistence

import (
	"log/slog"

	"careadmin/config"
	"careadmin/internal/domain/constants"
	"careadmin/internal/domain/repository"
	"careadmin/internal/errors"
	"careadmin/internal/infra/persistence/memory"
	"careadmin/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager opens the configured store. The postgres driver
// connects on fx start; the memory driver starts empty.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	switch params.Config.Persistence.Driver {
	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil
	case constants.PersistenceDriverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")

		return memory.NewTransactionManager(), nil
	default:
		return nil, errors.Errorf("unknown persistence driver %q", params.Config.Persistence.Driver)
	}
}

// Module provides the repository.TransactionManager.
//
//nolint:gochecknoglobals
var Module = fx.Module("persistence",
	fx.Provide(NewTransactionManager),
)
