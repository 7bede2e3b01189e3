// Package filex holds filesystem helpers used when preparing local storage.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SQLitePath extracts the database file path from a SQLite DSN such as
// "file:data/users.db?_pragma=busy_timeout(5000)" or "data/users.db".
// In-memory DSNs yield an empty string.
func SQLitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, query = path[:i], path[i+1:]
	}
	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return ""
	}
	return path
}

// EnsureDBDir creates the directory that will hold the SQLite file named by
// dsn, if it does not exist yet. It returns the directory, or "" when the DSN
// needs no directory (in-memory or a bare file name in the working dir).
func EnsureDBDir(dsn string) (string, error) {
	path := SQLitePath(dsn)
	if path == "" {
		return "", nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
