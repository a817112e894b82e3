package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"libraryapi/db"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(*command, *name); err != nil {
		log.Fatal("migration failed", "command", *command, "error", err)
	}
	log.Info("migration finished", "command", *command)
}

func run(command, name string) error {
	config.LoadEnvFiles()

	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		// New files go to the source tree; the binary only embeds what existed at build time.
		goose.SetBaseFS(nil)
		return goose.Create(nil, config.MigrationsDir(), name, "sql")
	}

	pool, err := postgres.Open(context.Background(), config.DatabaseDSN(), 5*time.Second)
	if err != nil {
		return err
	}
	defer pool.Close()

	conn := stdlib.OpenDBFromPool(pool)
	defer conn.Close()

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return db.Up(conn)
	case "down":
		return goose.Down(conn, db.MigrationsDir)
	case "status":
		return goose.Status(conn, db.MigrationsDir)
	default:
		return fmt.Errorf("unknown command %q; use up, down, status, create", command)
	}
}
