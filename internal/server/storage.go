package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/filex"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
)

// OpenStorage prepares the database named by cfg: it creates the directory of
// a file-backed SQLite DSN, connects, and applies pending migrations. The
// caller owns the returned *sql.DB.
func OpenStorage(ctx context.Context, cfg *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
	m, err := repomanager.New(cfg.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DatabaseDriver == config.DriverSQLite {
		dir, err := filex.EnsureDBDir(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("storage dir: %w", err)
		}
		if dir != "" {
			logger.Debug(ctx, "storage directory ready", "dir", dir)
		}
	}

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	logger.Info(ctx, "database ready", "driver", cfg.DatabaseDriver)
	return db, m, nil
}
