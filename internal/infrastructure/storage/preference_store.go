package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"

	_ "github.com/mattn/go-sqlite3"
)

// Storage turlari
const (
	KindMemory   = "memory"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// Options preference storage sozlamalari
type Options struct {
	Kind             string // bo'sh bo'lsa: PostgresDSN bor -> postgres, aks holda sqlite
	PostgresDSN      string
	SQLitePath       string
	DefaultLang      string
	ConnectAttempts  int
	ConnectRetryWait time.Duration
}

// ResolveKind tanlangan storage turini qaytaradi
func (o Options) ResolveKind() string {
	kind := strings.ToLower(strings.TrimSpace(o.Kind))
	if kind != "" {
		return kind
	}
	if strings.TrimSpace(o.PostgresDSN) != "" {
		return KindPostgres
	}
	return KindSQLite
}

// NewPreferenceRepository storage turini tanlab repository yaratadi
func NewPreferenceRepository(ctx context.Context, opts Options) (repository.PreferenceRepository, error) {
	if opts.DefaultLang == "" {
		opts.DefaultLang = constants.DefaultLanguage
	}

	switch kind := opts.ResolveKind(); kind {
	case KindMemory:
		logger.InfoLogger.Println("⚠️ Preference storage: memory (restartdan keyin saqlanmaydi)")
		return NewMemoryPreferenceRepository(opts.DefaultLang), nil
	case KindPostgres:
		return NewPostgresPreferenceRepository(ctx, opts)
	case KindSQLite:
		return NewSQLitePreferenceRepository(opts.SQLitePath, opts.DefaultLang)
	default:
		return nil, fmt.Errorf("unknown preference storage %q", kind)
	}
}

// NewPostgresPreferenceRepository lib/pq orqali Postgres storage
func NewPostgresPreferenceRepository(ctx context.Context, opts Options) (repository.PreferenceRepository, error) {
	dsn := strings.TrimSpace(opts.PostgresDSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: POSTGRES_DSN is empty", repository.ErrStorageUnavailable)
	}
	db, err := openPostgresWithRetry(ctx, dsn, opts.ConnectAttempts, opts.ConnectRetryWait)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	repo, err := newSQLPreferenceRepository(db, postgresPreferenceQueries, opts.DefaultLang)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.InfoLogger.Println("✅ Preference storage: postgres")
	return repo, nil
}

// NewSQLitePreferenceRepository mattn/go-sqlite3 orqali fayl storage
func NewSQLitePreferenceRepository(path, defaultLang string) (repository.PreferenceRepository, error) {
	if strings.TrimSpace(path) == "" {
		path = constants.SQLiteDefaultPath
	}
	if defaultLang == "" {
		defaultLang = constants.DefaultLanguage
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	// SQLite bitta yozuvchi bilan ishlaydi
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}

	repo, err := newSQLPreferenceRepository(db, sqlitePreferenceQueries, defaultLang)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.InfoLogger.Printf("✅ Preference storage: sqlite (%s)", path)
	return repo, nil
}
