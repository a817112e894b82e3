// Package db holds the SQL migrations applied by cmd/migrate.
package db

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS

// Up applies every pending migration from the embedded set.
func Up(conn *sql.DB) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(conn, MigrationsDir)
}
