package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// RunMigrations aplica las migraciones pendientes del directorio path sobre la
// base indicada por dsn. ErrNoChange (esquema ya al día) no es error.
func RunMigrations(dsn, path string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión para migrar: %w", err)
	}
	defer db.Close()

	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return fmt.Errorf("driver de migración: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+path, "pgx_v5", driver)
	if err != nil {
		return fmt.Errorf("preparar migraciones: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
