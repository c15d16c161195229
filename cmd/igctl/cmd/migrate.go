package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/instagram-insights-api/infrastructure/database"
	"github.com/vfg2006/instagram-insights-api/infrastructure/migration"
	"github.com/vfg2006/instagram-insights-api/internal/config"
)

var migratePrint bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the records table and its indexes",
	Long: `Applies the CREATE TABLE/INDEX statements for the postgres or sqlite driver.
With --print the statements are written to stdout instead, which is how the
table is created for the rest driver (paste them in the Supabase SQL editor).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migratePrint || cfg.Storage.Driver == config.StorageDriverREST {
			dialect := database.DialectPostgres
			if cfg.Storage.Driver == config.StorageDriverSQLite {
				dialect = database.DialectSQLite
			}

			statements, err := migration.Statements(dialect, cfg.Storage.TableName)
			if err != nil {
				return err
			}
			for _, stmt := range statements {
				fmt.Printf("%s;\n", stmt)
			}
			return nil
		}

		conn, err := database.NewConnection(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := migration.Apply(cmd.Context(), conn, cfg.Storage.TableName); err != nil {
			return err
		}

		fmt.Printf("table %s is ready (%s)\n", cfg.Storage.TableName, conn.Dialect)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migratePrint, "print", false, "Print the SQL instead of applying it")
	rootCmd.AddCommand(migrateCmd)
}
