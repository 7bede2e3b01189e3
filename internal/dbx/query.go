package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Execute runs a mutating statement (INSERT/UPDATE) and returns the driver's
// result metadata. Driver failures are wrapped so callers can still classify
// them with errors.As / IsUniqueViolation.
func Execute(ctx context.Context, db DBTX, query string, args ...any) (sql.Result, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return res, nil
}

// FetchOne runs a selecting statement and scans the first row into dest.
// Zero rows is not an error: FetchOne reports found=false and leaves dest
// untouched.
func FetchOne(ctx context.Context, db DBTX, query string, args []any, dest ...any) (bool, error) {
	err := db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}
