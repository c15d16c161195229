package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/instagram-insights-api/internal/config"
)

func TestSQLiteConnection(t *testing.T) {
	ctx := context.Background()
	conn, err := NewSQLiteConnection(ctx, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, DialectSQLite, conn.Dialect)
	assert.Equal(t, squirrel.Question, conn.Placeholder())
	require.NoError(t, conn.Ping(ctx))

	_, err = conn.Exec(ctx, "CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES (1)")
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES (2)"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNewConnection_RESTDriverHasNoSQL(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: config.StorageDriverREST}}

	_, err := NewConnection(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPostgresPlaceholder(t *testing.T) {
	conn := &Connection{Dialect: DialectPostgres}
	assert.Equal(t, squirrel.Dollar, conn.Placeholder())
}
