package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TemplateOverrides_Go/internal/catalog"
	"github.com/osse101/TemplateOverrides_Go/internal/config"
	"github.com/osse101/TemplateOverrides_Go/internal/database"
	"github.com/osse101/TemplateOverrides_Go/internal/database/postgres"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// CatalogOptions tweaks catalog loading.
type CatalogOptions struct {
	// Seed copies the file snapshot at cfg.CatalogPath into the database
	// before loading. Only valid with the postgres source.
	Seed bool
}

// LoadCatalog builds the template catalog from the configured source. For
// the postgres source the returned pool stays open for readiness checks and
// must be closed by the caller; it is nil for the file source.
func LoadCatalog(ctx context.Context, cfg *config.Config, opts CatalogOptions) (*catalog.Catalog, *pgxpool.Pool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingCatalog, "source", cfg.CatalogSource)

	if cfg.CatalogSource != config.CatalogSourcePostgres {
		if opts.Seed {
			return nil, nil, fmt.Errorf("%s", ErrMsgSeedNeedsDatabase)
		}
		c, err := catalog.NewFileSource(cfg.CatalogPath).Load(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		return c, nil, nil
	}

	connString := cfg.GetDBConnString()
	if cfg.RunMigrations {
		log.Info(LogMsgRunningMigration)
		if err := database.RunMigrations(ctx, connString); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}
	}

	pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	repo := postgres.NewCatalogRepository(pool)
	if opts.Seed {
		log.Info(LogMsgSeedingCatalog, "path", cfg.CatalogPath)
		snapshot, err := catalog.NewFileSource(cfg.CatalogPath).Snapshot()
		if err == nil {
			err = repo.Save(ctx, snapshot)
		}
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
		}
	}

	c, err := repo.Load(ctx)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return c, pool, nil
}
