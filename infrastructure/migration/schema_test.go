package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/instagram-insights-api/infrastructure/database"
)

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, ValidateTableName("instagram_data"))
	assert.Error(t, ValidateTableName("instagram_data; DROP TABLE x"))
	assert.Error(t, ValidateTableName(""))
	assert.Error(t, ValidateTableName("1table"))
}

func TestStatements_Postgres(t *testing.T) {
	statements, err := Statements(database.DialectPostgres, "instagram_data")
	require.NoError(t, err)

	require.Len(t, statements, 5)
	assert.Contains(t, statements[0], "audience_country JSONB")
	assert.Contains(t, statements[0], "fetched_at TIMESTAMPTZ NOT NULL")
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_instagram_data_hashtag ON instagram_data (hashtag)", statements[4])
}

func TestApply_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := database.NewSQLiteConnection(ctx, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Apply(ctx, conn, "instagram_data"))
	require.NoError(t, Apply(ctx, conn, "instagram_data"))

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND tbl_name = 'instagram_data' AND name LIKE 'idx_%'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
