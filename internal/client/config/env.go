package config

import "os"

// parseEnv overlays cfg with ACCOUNTS_SERVER_URL when it is set.
func parseEnv(cfg *Config) {
	if v := os.Getenv("ACCOUNTS_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
}
