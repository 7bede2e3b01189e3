package repomanager

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		driver  string
		want    RepositoryManager
		wantErr bool
	}{
		{driver: "sqlite", want: &SQLiteRepositoryManager{}},
		{driver: "pgx", want: &PostgresRepositoryManager{}},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := New(tt.driver)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB(context.Background(), "mysql", "whatever")
	require.Error(t, err)
}

func TestSQLiteRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := OpenDB(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	require.NoError(t, m.RunMigrations(ctx, db), "second run must be a no-op")

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'users'`).Scan(&n))
	assert.Equal(t, 1, n)

	_, err = m.Users(db).Create(ctx, &models.User{ID: "1", UserName: "al", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
}
