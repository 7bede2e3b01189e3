package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT UNIQUE);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := Execute(ctx, tx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)

	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func TestFetchOne(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := Execute(ctx, db, `INSERT INTO t(v) VALUES (?)`, "hello")
	require.NoError(t, err)

	var v string
	found, err := FetchOne(ctx, db, `SELECT v FROM t WHERE v = ?`, []any{"hello"}, &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", v)

	v = "untouched"
	found, err = FetchOne(ctx, db, `SELECT v FROM t WHERE v = ?`, []any{"ghost"}, &v)
	require.NoError(t, err, "zero rows must not be an error")
	assert.False(t, found)
	assert.Equal(t, "untouched", v)

	_, err = FetchOne(ctx, db, `SELECT v FROM missing_table`, nil, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error:")
}

func TestExecute_UniqueViolationIsClassified(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := Execute(ctx, db, `INSERT INTO t(v) VALUES (?)`, "dup")
	require.NoError(t, err)

	_, err = Execute(ctx, db, `INSERT INTO t(v) VALUES (?)`, "dup")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = Execute(ctx, db, `INSERT INTO nope(v) VALUES (?)`, "x")
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unique violation", fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505"}), true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"driver text", errors.New("UNIQUE constraint failed: users.email"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
