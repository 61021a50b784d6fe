package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// preferenceQueries dialektga bog'liq SQL (Postgres $1, SQLite ?)
type preferenceQueries struct {
	schema string
	get    string
	upsert string
	list   string

	// legacyExists/legacyImport eski bot jadvali users(user_id, lang) uchun.
	// Bo'sh bo'lsa import qilinmaydi.
	legacyExists string
	legacyImport string
}

var postgresPreferenceQueries = preferenceQueries{
	schema: `
CREATE TABLE IF NOT EXISTS user_languages (
	user_id BIGINT PRIMARY KEY,
	lang TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	get: `SELECT lang FROM user_languages WHERE user_id = $1`,
	upsert: `
	INSERT INTO user_languages (user_id, lang, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET lang = EXCLUDED.lang, updated_at = EXCLUDED.updated_at
	WHERE user_languages.lang <> EXCLUDED.lang`,
	list: `SELECT user_id, lang, updated_at FROM user_languages ORDER BY user_id`,
}

var sqlitePreferenceQueries = preferenceQueries{
	schema: `
CREATE TABLE IF NOT EXISTS user_languages (
	user_id INTEGER PRIMARY KEY,
	lang TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`,
	get: `SELECT lang FROM user_languages WHERE user_id = ?`,
	upsert: `
	INSERT INTO user_languages (user_id, lang, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE
	SET lang = excluded.lang, updated_at = excluded.updated_at
	WHERE user_languages.lang <> excluded.lang`,
	list: `SELECT user_id, lang, updated_at FROM user_languages ORDER BY user_id`,
	legacyExists: `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'users'`,
	legacyImport: `
	INSERT INTO user_languages (user_id, lang, updated_at)
	SELECT user_id, lang, ? FROM users
	WHERE user_id IS NOT NULL AND lang IS NOT NULL AND lang <> ''
	ON CONFLICT (user_id) DO NOTHING`,
}

// sqlPreferenceRepository Postgres va SQLite uchun umumiy implementatsiya
type sqlPreferenceRepository struct {
	db          *sql.DB
	q           preferenceQueries
	defaultLang string
}

func newSQLPreferenceRepository(db *sql.DB, q preferenceQueries, defaultLang string) (*sqlPreferenceRepository, error) {
	if _, err := db.Exec(q.schema); err != nil {
		return nil, fmt.Errorf("%w: create user_languages table: %w", repository.ErrStorageUnavailable, err)
	}
	if err := importLegacyUsers(db, q); err != nil {
		return nil, err
	}
	return &sqlPreferenceRepository{db: db, q: q, defaultLang: defaultLang}, nil
}

// importLegacyUsers eski users jadvalidagi tanlovlarni ko'chiradi.
// user_languages dagi yozuvlar ustun turadi, shuning uchun qayta ishga tushirish xavfsiz.
func importLegacyUsers(db *sql.DB, q preferenceQueries) error {
	if q.legacyExists == "" {
		return nil
	}
	var n int
	if err := db.QueryRow(q.legacyExists).Scan(&n); err != nil {
		return fmt.Errorf("%w: check legacy users table: %w", repository.ErrStorageUnavailable, err)
	}
	if n == 0 {
		return nil
	}
	res, err := db.Exec(q.legacyImport, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: import legacy users table: %w", repository.ErrStorageUnavailable, err)
	}
	if moved, _ := res.RowsAffected(); moved > 0 {
		logger.InfoLogger.Printf("📦 Eski users jadvalidan %d ta til tanlovi ko'chirildi", moved)
	}
	return nil
}

func (r *sqlPreferenceRepository) GetLanguage(ctx context.Context, userID int64) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx, r.q.get, userID).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return r.defaultLang, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	return code, nil
}

func (r *sqlPreferenceRepository) SetLanguage(ctx context.Context, userID int64, code string) error {
	if _, err := r.db.ExecContext(ctx, r.q.upsert, userID, code, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *sqlPreferenceRepository) ListPreferences(ctx context.Context) ([]entity.UserPreference, error) {
	rows, err := r.db.QueryContext(ctx, r.q.list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []entity.UserPreference
	for rows.Next() {
		var pref entity.UserPreference
		if err := rows.Scan(&pref.UserID, &pref.LanguageCode, &pref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
		}
		res = append(res, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
	}
	return res, nil
}

func (r *sqlPreferenceRepository) Close() error {
	return r.db.Close()
}
