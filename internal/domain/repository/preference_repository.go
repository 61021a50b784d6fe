package repository

import (
	"context"
	"errors"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// ErrStorageUnavailable preference storage bilan bog'lanib bo'lmadi
var ErrStorageUnavailable = errors.New("preference storage unavailable")

// PreferenceRepository foydalanuvchi tili uchun durable key-value storage.
// Storage xatolari ErrStorageUnavailable bilan o'raladi.
type PreferenceRepository interface {
	// GetLanguage saqlangan kodni yoki default tilni qaytaradi
	GetLanguage(ctx context.Context, userID int64) (string, error)

	// SetLanguage upsert (oxirgi yozuv yutadi)
	SetLanguage(ctx context.Context, userID int64, code string) error

	// ListPreferences barcha saqlangan tanlovlar (eksport uchun)
	ListPreferences(ctx context.Context) ([]entity.UserPreference, error)

	// Close storage ni yopish
	Close() error
}

// TranslationCache Resilient Translator ishlatadigan kesh
type TranslationCache interface {
	Lookup(text, targetLang string) (entity.Translation, bool)
	Insert(text, targetLang string, result entity.Translation) bool
	Key(text, targetLang string) entity.CacheKey
}
