package database

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/vfg2006/instagram-insights-api/internal/config"
)

func NewPostgresConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, Dialect: DialectPostgres}, nil
}
