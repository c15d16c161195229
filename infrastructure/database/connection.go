package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/instagram-insights-api/internal/config"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection envolve o *sql.DB e sabe qual dialeto SQL está do outro lado
type Connection struct {
	*sql.DB
	Dialect Dialect
}

// NewConnection abre a conexão do driver configurado em STORAGE_DRIVER
func NewConnection(ctx context.Context, cfg *config.Config) (*Connection, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return NewPostgresConnection(ctx, cfg.Database)
	case config.StorageDriverSQLite:
		return NewSQLiteConnection(ctx, cfg.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("database: driver %q has no SQL connection", cfg.Storage.Driver)
	}
}

// Placeholder retorna o formato de placeholder do squirrel para o dialeto
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.Dialect == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (c *Connection) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.DB.ExecContext(ctx, query, args...)
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.DB.QueryRowContext(ctx, query, args...)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
