package app

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // nolint: revive // required for the postgres driver used by migrations
	"github.com/spf13/cobra"

	"github.com/rampp2p/escrow/config"
	"github.com/rampp2p/escrow/internal/escrow/store/postgresql"
)

const migrationsTable = "escrow_schema_migrations"

var ErrNotPostgres = errors.New("migrations apply to the postgres store only")

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the postgres schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withMigrations(func(m *migrate.Migrate) error {
			return m.Up()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the given number of migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}

		return withMigrations(func(m *migrate.Migrate) error {
			return m.Steps(-steps)
		})
	},
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	MigrateCmd.AddCommand(migrateUpCmd)
	MigrateCmd.AddCommand(migrateDownCmd)
}

func withMigrations(run func(m *migrate.Migrate) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Db.Mode != config.DbModePostgres {
		return ErrNotPostgres
	}

	dbConn, err := sql.Open("postgres", cfg.Db.Postgres.DataSourceName())
	if err != nil {
		return fmt.Errorf("failed to create db connection: %v", err)
	}
	defer func() {
		_ = dbConn.Close()
	}()

	driver, err := migratepostgres.WithInstance(dbConn, &migratepostgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create driver: %v", err)
	}

	source, err := iofs.New(postgresql.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrate instance: %v", err)
	}

	err = run(m)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	fmt.Printf("schema version %d (dirty: %t)\n", version, dirty)
	return nil
}
