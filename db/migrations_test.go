package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

func TestMigrations_HaveGooseDirectives(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, MigrationsDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one migration")
	}

	for _, e := range entries {
		b, err := fs.ReadFile(Migrations, MigrationsDir+"/"+e.Name())
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
	}
}

func TestMigrations_EnforceUniqueISBN(t *testing.T) {
	b, err := fs.ReadFile(Migrations, MigrationsDir+"/00001_create_books.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "CREATE UNIQUE INDEX IF NOT EXISTS books_isbn_key ON books (isbn)") {
		t.Fatal("expected a unique index on books.isbn")
	}
}

func TestCollectMigrations_ParsesEmbeddedSet(t *testing.T) {
	goose.SetBaseFS(Migrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(MigrationsDir, 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
	if len(migrations) != 1 || migrations[0].Version != 1 {
		t.Fatalf("unexpected migrations %v", migrations)
	}
}
