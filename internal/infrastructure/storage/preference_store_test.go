package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
)

func exercisePreferenceRepository(t *testing.T, repo repository.PreferenceRepository) {
	t.Helper()
	ctx := context.Background()

	if got, err := repo.GetLanguage(ctx, 42); err != nil || got != "en" {
		t.Fatalf("unset user: got %q err=%v, want default en", got, err)
	}
	if err := repo.SetLanguage(ctx, 42, "ru"); err != nil {
		t.Fatalf("SetLanguage returned error: %v", err)
	}
	if err := repo.SetLanguage(ctx, 42, "fr"); err != nil {
		t.Fatalf("SetLanguage returned error: %v", err)
	}
	if err := repo.SetLanguage(ctx, 7, "de"); err != nil {
		t.Fatalf("SetLanguage returned error: %v", err)
	}
	if got, _ := repo.GetLanguage(ctx, 42); got != "fr" {
		t.Fatalf("last write should win, got %q", got)
	}

	prefs, err := repo.ListPreferences(ctx)
	if err != nil {
		t.Fatalf("ListPreferences returned error: %v", err)
	}
	if len(prefs) != 2 || prefs[0].UserID != 7 || prefs[1].UserID != 42 || prefs[1].LanguageCode != "fr" {
		t.Fatalf("unexpected preferences %+v", prefs)
	}
	if prefs[0].UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt must be set")
	}
}

func TestMemoryPreferenceRepository(t *testing.T) {
	exercisePreferenceRepository(t, NewMemoryPreferenceRepository(""))
}

func TestMemoryPreferenceRepository_Concurrent(t *testing.T) {
	repo := NewMemoryPreferenceRepository("en")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = repo.SetLanguage(ctx, id%5, "es")
			_, _ = repo.GetLanguage(ctx, id%5)
		}(int64(i))
	}
	wg.Wait()

	prefs, _ := repo.ListPreferences(ctx)
	if len(prefs) != 5 {
		t.Fatalf("expected 5 users, got %d", len(prefs))
	}
}

func TestSQLitePreferenceRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	repo, err := NewSQLitePreferenceRepository(path, "en")
	if err != nil {
		t.Fatalf("NewSQLitePreferenceRepository returned error: %v", err)
	}
	exercisePreferenceRepository(t, repo)
	if err := repo.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	// restartdan keyin ham saqlanib qolishi kerak
	reopened, err := NewSQLitePreferenceRepository(path, "en")
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()
	if got, _ := reopened.GetLanguage(context.Background(), 42); got != "fr" {
		t.Fatalf("preference lost after reopen, got %q", got)
	}
}

func TestSQLitePreferenceRepository_SameValueKeepsTimestamp(t *testing.T) {
	repo, err := NewSQLitePreferenceRepository(filepath.Join(t.TempDir(), "users.db"), "en")
	if err != nil {
		t.Fatalf("NewSQLitePreferenceRepository returned error: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	_ = repo.SetLanguage(ctx, 1, "ru")
	before, _ := repo.ListPreferences(ctx)
	_ = repo.SetLanguage(ctx, 1, "ru")
	after, _ := repo.ListPreferences(ctx)
	if !before[0].UpdatedAt.Equal(after[0].UpdatedAt) {
		t.Fatalf("re-selecting the same language should not touch the row: %v vs %v", before[0].UpdatedAt, after[0].UpdatedAt)
	}
}

func TestSQLitePreferenceRepository_ImportsLegacyUsersTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	legacy, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open legacy db: %v", err)
	}
	if _, err := legacy.Exec(`CREATE TABLE users (user_id INTEGER PRIMARY KEY, lang TEXT)`); err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	if _, err := legacy.Exec(`INSERT INTO users (user_id, lang) VALUES (5, 'de'), (6, 'ja'), (8, NULL)`); err != nil {
		t.Fatalf("seed legacy table: %v", err)
	}
	_ = legacy.Close()

	repo, err := NewSQLitePreferenceRepository(path, "en")
	if err != nil {
		t.Fatalf("NewSQLitePreferenceRepository returned error: %v", err)
	}
	ctx := context.Background()
	if got, _ := repo.GetLanguage(ctx, 5); got != "de" {
		t.Fatalf("legacy choice not imported, got %q", got)
	}
	if got, _ := repo.GetLanguage(ctx, 8); got != "en" {
		t.Fatalf("NULL legacy lang should fall back to default, got %q", got)
	}
	if err := repo.SetLanguage(ctx, 5, "ru"); err != nil {
		t.Fatalf("SetLanguage returned error: %v", err)
	}
	_ = repo.Close()

	// qayta ochilganda eski jadval yangi tanlovni bosib ketmasligi kerak
	reopened, err := NewSQLitePreferenceRepository(path, "en")
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()
	if got, _ := reopened.GetLanguage(ctx, 5); got != "ru" {
		t.Fatalf("legacy import overwrote newer choice, got %q", got)
	}
	prefs, _ := reopened.ListPreferences(ctx)
	if len(prefs) != 2 {
		t.Fatalf("expected 2 imported users, got %+v", prefs)
	}
}

func TestNewSQLPreferenceRepository_SchemaErrorIsStorageUnavailable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_ = db.Close()

	_, err = newSQLPreferenceRepository(db, sqlitePreferenceQueries, "en")
	if !errors.Is(err, repository.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestPostgresPreferenceRepository(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	repo, err := NewPostgresPreferenceRepository(context.Background(), Options{PostgresDSN: dsn, DefaultLang: "en", ConnectAttempts: 1})
	if err != nil {
		t.Fatalf("NewPostgresPreferenceRepository returned error: %v", err)
	}
	defer repo.Close()
	if _, err := repo.(*sqlPreferenceRepository).db.Exec(`DELETE FROM user_languages WHERE user_id IN (7, 42)`); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	exercisePreferenceRepository(t, repo)
}

func TestOptionsResolveKind(t *testing.T) {
	cases := []struct {
		opts Options
		want string
	}{
		{Options{}, KindSQLite},
		{Options{PostgresDSN: "postgres://u@h/db"}, KindPostgres},
		{Options{Kind: " Memory "}, KindMemory},
		{Options{Kind: "sqlite", PostgresDSN: "postgres://u@h/db"}, KindSQLite},
	}
	for _, tc := range cases {
		if got := tc.opts.ResolveKind(); got != tc.want {
			t.Fatalf("ResolveKind(%+v)=%q want %q", tc.opts, got, tc.want)
		}
	}
}

func TestNewPreferenceRepository_UnknownKind(t *testing.T) {
	if _, err := NewPreferenceRepository(context.Background(), Options{Kind: "mongo"}); err == nil {
		t.Fatal("expected error for unknown storage kind")
	}
}

func TestParsePostgresDSNInfo(t *testing.T) {
	info, ok := parsePostgresDSNInfo("postgres://bot:secret@db:5433/translate?sslmode=require")
	if !ok || info.User != "bot" || info.Password != "secret" || info.Host != "db" || info.Port != "5433" || info.DBName != "translate" || info.SSLMode != "require" {
		t.Fatalf("unexpected url info %+v", info)
	}

	info, ok = parsePostgresDSNInfo("host=localhost user=bot dbname='translate'")
	if !ok || info.Host != "localhost" || info.DBName != "translate" || info.Port != "5432" || info.SSLMode != "disable" {
		t.Fatalf("unexpected key/value info %+v", info)
	}

	if got := info.buildURL("postgres"); got != "postgres://bot@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("buildURL=%q", got)
	}
	if _, ok := parsePostgresDSNInfo("  "); ok {
		t.Fatal("empty dsn should not parse")
	}
}
