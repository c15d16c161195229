package database

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection abre o banco embutido; ":memory:" serve para testes
func NewSQLiteConnection(ctx context.Context, path string) (*Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Em memória cada conexão teria um banco próprio
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Connection{DB: db, Dialect: DialectSQLite}, nil
}
