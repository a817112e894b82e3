package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_CreateRequiresName(t *testing.T) {
	if err := run("create", ""); err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}

func TestRun_CreateWritesIntoMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	if err := run("create", "add_books_index"); err != nil {
		t.Fatalf("create: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "*_add_books_index.sql"))
	if len(matches) != 1 {
		entries, _ := os.ReadDir(dir)
		t.Fatalf("expected one new migration file, got %v", entries)
	}
}
