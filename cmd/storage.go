package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"cargo/internal/adapters/out/memory"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenStorage connects the configured storage driver, migrates its schema and
// returns the gateway factory together with a function releasing the
// connection.
func OpenStorage(ctx context.Context, cfg Config, log *slog.Logger) (ports.PersistenceGatewayFactory, func() error, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		log.InfoContext(ctx, "Using in-memory storage")
		return memory.NewGatewayFactory(memory.NewStore()), func() error { return nil }, nil
	case StorageDriverPostgres:
		dialector = gorm_postgres.Open(cfg.PostgresDSN())
	case StorageDriverSQLite:
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", cfg.SQLitePath))
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", cfg.StorageDriver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if cfg.StorageDriver == StorageDriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate %s schema: %w", cfg.StorageDriver, err)
	}

	log.InfoContext(ctx, "Storage ready", "driver", cfg.StorageDriver)
	return postgres.NewGormGatewayFactory(db), sqlDB.Close, nil
}
