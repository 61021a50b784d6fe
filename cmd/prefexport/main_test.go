package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/storage"
)

func TestExportPreferences_SQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "users.db")

	repo, err := storage.NewSQLitePreferenceRepository(dbPath, "en")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ctx := context.Background()
	_ = repo.SetLanguage(ctx, 1, "de")
	_ = repo.SetLanguage(ctx, 2, "es")
	_ = repo.Close()

	out := filepath.Join(dir, "out.xlsx")
	n, err := exportPreferences(ctx, storage.Options{Kind: storage.KindSQLite, SQLitePath: dbPath}, out)
	if err != nil {
		t.Fatalf("exportPreferences returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("exported %d rows, want 2", n)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Languages")
	if len(rows) != 3 || rows[2][2] != "Spanish" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestRootCommand_RejectsMemoryStorage(t *testing.T) {
	t.Setenv("PREFS_STORAGE", "")
	t.Setenv("POSTGRES_DSN", "")
	rootCmd.SetArgs([]string{"--storage", "memory", "--out", filepath.Join(t.TempDir(), "x.xlsx")})
	rootCmd.SetOut(os.Stderr)
	defer func() { storeKind, outFile = "", "" }()

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for memory storage")
	}
}

func TestStoreOptionsFromEnv_DatabaseURL(t *testing.T) {
	for _, k := range []string{"PREFS_STORAGE", "POSTGRES_DSN", "PREFS_DB_PATH", "POSTGRES_HOST", "POSTGRES_USER", "POSTGRES_DB"} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "postgres://bot@db:5432/prefs")

	opts := storeOptionsFromEnv()
	if opts.PostgresDSN != "postgres://bot@db:5432/prefs" {
		t.Fatalf("DATABASE_URL ignored, PostgresDSN=%q", opts.PostgresDSN)
	}
	if opts.ResolveKind() != storage.KindPostgres {
		t.Fatalf("expected postgres, got %q", opts.ResolveKind())
	}
}
