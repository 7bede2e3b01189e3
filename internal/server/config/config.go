// Package config handles configuration for the account server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/cryptox"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
)

// Supported database drivers (database/sql driver names).
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Config holds runtime settings for the account server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API and static client.
//   - DatabaseDriver: "sqlite" (modernc) or "pgx" (PostgreSQL).
//   - DatabaseDSN: driver-specific DSN.
//   - BcryptCost: work factor for password hashes.
//   - LogBackend / LogDevelopment: logger selection, see logging.New.
//   - ReadTimeout / WriteTimeout: per-request limits of the HTTP server.
//   - ShutdownTimeout: how long in-flight requests may run after a signal.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDriver   string
	DatabaseDSN      string
	BcryptCost       int
	LogBackend       string
	LogDevelopment   bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults: a SQLite file
// under ./data and port 3000.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "file:data/users.db?_pragma=busy_timeout(5000)"
	c.BcryptCost = cryptox.DefaultCost
	c.LogBackend = logging.BackendSlog
	c.LogDevelopment = false
	c.ReadTimeout = 10 * time.Second
	c.WriteTimeout = 10 * time.Second
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file) and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
