// Package postgres stores delivery map snapshots in PostgreSQL through GORM.
package postgres

import (
	"context"
	"log/slog"

	"kuttyport/config"
	"kuttyport/internal/domain/lifecycle"
	"kuttyport/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// poolStatsDBName labels the go_sql_* pool metrics.
const poolStatsDBName = "snapshots"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Registerer receives connection pool statistics when set
	Registerer prometheus.Registerer `optional:"true"`
}

// New opens the snapshot database. The connection is verified, and the table
// migrated when storage.autoMigrate is on, when the application starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres storage selected without a postgres section")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Snapshot writes open their own row locking transaction.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	var poolStats prometheus.Collector
	if params.Registerer != nil {
		poolStats = collectors.NewDBStatsCollector(sqlDB, poolStatsDBName)
		if err := params.Registerer.Register(poolStats); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Storage != nil && params.Config.Storage.AutoMigrate {
				if err := AutoMigrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Delivery snapshot table migrated")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			if poolStats != nil {
				params.Registerer.Unregister(poolStats)
			}

			return sqlDB.Close()
		},
	})

	return db, nil
}
