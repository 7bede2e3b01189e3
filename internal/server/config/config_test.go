package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"PORT", "HTTP_ADDRESS", "DATABASE_DRIVER", "DATABASE_DSN", "BCRYPT_COST", "LOG_BACKEND", "LOG_DEVELOPMENT"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	orig := envFile
	envFile = "does-not-exist.env"
	t.Cleanup(func() { envFile = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, DriverSQLite, c.DatabaseDriver)
	assert.Equal(t, "file:data/users.db?_pragma=busy_timeout(5000)", c.DatabaseDSN)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, "slog", c.LogBackend)
	assert.False(t, c.LogDevelopment)
	assert.Equal(t, 10*time.Second, c.ReadTimeout)
	assert.Equal(t, 10*time.Second, c.WriteTimeout)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_http": ":7000",
		"database_dsn":       "from-json.db",
		"log_backend":        "zap",
	})
	t.Setenv("DATABASE_DSN", "from-env.db")
	os.Args = []string{"testbin", "-c", path, "-a", ":9000"}

	c := LoadConfig()

	assert.Equal(t, ":9000", c.EndpointAddrHTTP, "flag beats json")
	assert.Equal(t, "from-env.db", c.DatabaseDSN, "env beats json")
	assert.Equal(t, "zap", c.LogBackend, "json beats defaults")
	assert.Equal(t, DriverSQLite, c.DatabaseDriver, "untouched default")
}
