// Command initdb prepares the users database ahead of the first server start.
// It reads the same configuration as the server and applies every pending
// migration. Running it again changes nothing.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogDevelopment)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	db, _, err := server.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info(ctx, "users table ready", "driver", cfg.DatabaseDriver)
}
