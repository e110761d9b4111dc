package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"careadmin/config"
	logs "careadmin/internal/infra/log"
	"careadmin/internal/infra/persistence/postgres"
	"careadmin/internal/usecase/impl"

	"github.com/pkg/errors"
)

func main() {
	seed := flag.Bool("seed", false, "Insert missing default catalog rows after migrating")
	flag.Parse()

	if err := run(context.Background(), *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seed bool) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		return errors.Wrap(err, "migration failed")
	}
	logger.Info("Schema migrated")

	if !seed {
		return nil
	}

	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		Config:    cfg,
		Logger:    logger,
	})

	inserted, err := catalogUC.SeedAll(ctx)
	if err != nil {
		return errors.Wrap(err, "seeding failed")
	}
	for kind, n := range inserted {
		if n > 0 {
			logger.Info("Seeded catalog", slog.String("kind", kind.String()), slog.Int("inserted", n))
		}
	}

	return nil
}
