package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
)

type memoryPreferenceRepository struct {
	mu          sync.RWMutex
	prefs       map[int64]entity.UserPreference
	defaultLang string
}

// NewMemoryPreferenceRepository in-memory preference repository yaratish (restartdan keyin yo'qoladi)
func NewMemoryPreferenceRepository(defaultLang string) repository.PreferenceRepository {
	if defaultLang == "" {
		defaultLang = constants.DefaultLanguage
	}
	return &memoryPreferenceRepository{
		prefs:       make(map[int64]entity.UserPreference),
		defaultLang: defaultLang,
	}
}

// GetLanguage foydalanuvchi tilini olish
func (m *memoryPreferenceRepository) GetLanguage(_ context.Context, userID int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if pref, ok := m.prefs[userID]; ok {
		return pref.LanguageCode, nil
	}
	return m.defaultLang, nil
}

// SetLanguage tilni saqlash
func (m *memoryPreferenceRepository) SetLanguage(_ context.Context, userID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if pref, ok := m.prefs[userID]; ok && pref.LanguageCode == code {
		return nil
	}
	m.prefs[userID] = entity.UserPreference{
		UserID:       userID,
		LanguageCode: code,
		UpdatedAt:    time.Now(),
	}
	return nil
}

// ListPreferences barcha tanlovlar, userID bo'yicha tartiblangan
func (m *memoryPreferenceRepository) ListPreferences(_ context.Context) ([]entity.UserPreference, error) {
	m.mu.RLock()
	out := make([]entity.UserPreference, 0, len(m.prefs))
	for _, pref := range m.prefs {
		out = append(out, pref)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (m *memoryPreferenceRepository) Close() error { return nil }
