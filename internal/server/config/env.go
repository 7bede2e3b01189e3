package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envFile is the dotenv file read before the environment is consulted.
// Variables already present in the process environment win.
var envFile = ".env"

// parseEnv overlays config with environment variables:
//
//	PORT             listen on ":PORT"
//	HTTP_ADDRESS     full bind address, wins over PORT
//	DATABASE_DRIVER  sqlite | pgx
//	DATABASE_DSN     driver DSN
//	BCRYPT_COST      integer work factor
//	LOG_BACKEND      slog | zap
//	LOG_DEVELOPMENT  boolean
//
// Malformed numeric or boolean values are ignored.
func parseEnv(config *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		config.DatabaseDriver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("LOG_BACKEND"); v != "" {
		config.LogBackend = v
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.LogDevelopment = b
		}
	}
}
