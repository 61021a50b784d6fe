package usecase

import (
	"context"
	"fmt"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
)

// PreferenceUseCase foydalanuvchi tarjima tili bilan bog'liq business logic
type PreferenceUseCase interface {
	Language(ctx context.Context, userID int64) (string, error)
	SetLanguage(ctx context.Context, userID int64, code string) (entity.Language, error)
}

type preferenceUseCase struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceUseCase yangi PreferenceUseCase yaratish
func NewPreferenceUseCase(prefRepo repository.PreferenceRepository) PreferenceUseCase {
	return &preferenceUseCase{prefRepo: prefRepo}
}

// Language foydalanuvchi tilini (yoki default) qaytaradi
func (u *preferenceUseCase) Language(ctx context.Context, userID int64) (string, error) {
	code, err := u.prefRepo.GetLanguage(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get language for user %d: %w", userID, err)
	}
	return code, nil
}

// SetLanguage faqat menyudagi tillarni qabul qiladi
func (u *preferenceUseCase) SetLanguage(ctx context.Context, userID int64, code string) (entity.Language, error) {
	lang, ok := entity.FindLanguage(code)
	if !ok {
		return entity.Language{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedLanguage, code)
	}
	if err := u.prefRepo.SetLanguage(ctx, userID, lang.Code); err != nil {
		return entity.Language{}, fmt.Errorf("set language for user %d: %w", userID, err)
	}
	return lang, nil
}
