package migration

import (
	"context"
	"fmt"
	"regexp"

	"github.com/vfg2006/instagram-insights-api/infrastructure/database"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// ValidateTableName garante que o nome pode ser interpolado no SQL com segurança
func ValidateTableName(table string) error {
	if !identifierPattern.MatchString(table) {
		return fmt.Errorf("migration: invalid table name %q", table)
	}
	return nil
}

type columnTypes struct {
	json      string
	timestamp string
	integer   string
}

func typesFor(dialect database.Dialect) columnTypes {
	if dialect == database.DialectPostgres {
		return columnTypes{json: "JSONB", timestamp: "TIMESTAMPTZ", integer: "BIGINT"}
	}
	return columnTypes{json: "TEXT", timestamp: "TIMESTAMP", integer: "INTEGER"}
}

// Statements retorna o DDL da tabela larga e dos índices secundários
func Statements(dialect database.Dialect, table string) ([]string, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}

	t := typesFor(dialect)
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
	id TEXT PRIMARY KEY,
	data_type TEXT NOT NULL,
	fetched_at %[2]s NOT NULL,
	source_id TEXT,
	username TEXT,
	account_type TEXT,
	media_count %[3]s,
	caption TEXT,
	media_type TEXT,
	media_url TEXT,
	permalink TEXT,
	thumbnail_url TEXT,
	posted_at TEXT,
	children %[4]s,
	media_id TEXT,
	engagement %[3]s,
	impressions %[3]s,
	reach %[3]s,
	saved %[3]s,
	video_views %[3]s,
	user_id TEXT,
	audience_gender_age %[4]s,
	audience_locale %[4]s,
	audience_country %[4]s,
	online_followers %[4]s,
	hashtag TEXT,
	hashtag_id TEXT
)`, table, t.timestamp, t.integer, t.json)

	statements := []string{create}
	for _, column := range []string{"data_type", "fetched_at", "username", "hashtag"} {
		statements = append(statements, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%[1]s_%[2]s ON %[1]s (%[2]s)", table, column,
		))
	}

	return statements, nil
}

// Apply cria a tabela e os índices; pode ser executado várias vezes
func Apply(ctx context.Context, conn *database.Connection, table string) error {
	statements, err := Statements(conn.Dialect, table)
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
	}

	log.L.WithField("table", table).Infof("migration: schema ready (%s)", conn.Dialect)
	return nil
}
