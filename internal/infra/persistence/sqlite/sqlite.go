// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over an embedded, WAL-mode SQLite database.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"simbridge/config"
	"simbridge/internal/domain/lifecycle"
	"simbridge/internal/errors"
	"simbridge/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the embedded database, applies pragmas and migrations.
// WAL keeps concurrent readers alive next to the single writer;
// busy_timeout absorbs short lock contention before the application
// level retry in withBusyRetry kicks in.
func New(params Params) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		params.Config.Sqlite.Path,
		params.Config.Sqlite.BusyTimeout.Milliseconds(),
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Explicit transactions only; sqlite's implicit per-statement
		// transactions are enough for single writes.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	// Single writer semantics: one connection avoids SQLITE_BUSY storms
	// between pooled writers while WAL still serves readers.
	sqlDB.SetMaxOpenConns(1)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping sqlite")
			}

			return migrate(db)
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ActivationModel{},
		&model.SMSRecordModel{},
		&model.NumberUsageModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate sqlite schema")
	}

	return nil
}
