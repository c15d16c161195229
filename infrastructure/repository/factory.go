package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/instagram-insights-api/infrastructure/database"
	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/instagram-insights-api/infrastructure/migration"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

// NewRecordStore escolhe o armazenamento pelo STORAGE_DRIVER.
// O closer libera a conexão SQL quando houver uma.
func NewRecordStore(ctx context.Context, cfg *config.Config) (RecordRepository, func() error, error) {
	noop := func() error { return nil }

	if err := migration.ValidateTableName(cfg.Storage.TableName); err != nil {
		return nil, noop, err
	}

	if cfg.Storage.Driver == config.StorageDriverREST {
		if cfg.Storage.SupabaseURL == "" || cfg.Storage.SupabaseKey == "" {
			log.L.Warn("repository: SUPABASE_URL or SUPABASE_KEY is empty, writes will fail")
		}
		return supabase.NewRecordClient(cfg), noop, nil
	}

	conn, err := database.NewConnection(ctx, cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("repository: open %s: %w", cfg.Storage.Driver, err)
	}

	if cfg.Storage.AutoMigrate || conn.Dialect == database.DialectSQLite {
		if err := migration.Apply(ctx, conn, cfg.Storage.TableName); err != nil {
			_ = conn.Close()
			return nil, noop, err
		}
	}

	return NewRecordRepository(conn, cfg.Storage.TableName), conn.Close, nil
}
