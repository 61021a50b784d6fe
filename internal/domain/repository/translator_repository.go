package repository

import (
	"context"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// TranslatorRepository tashqi tarjima provayderi bilan ishlash uchun interface.
// Implementatsiyalar sekin bo'lishi va vaqtinchalik xato qaytarishi mumkin.
type TranslatorRepository interface {
	// Translate matnni targetLang tiliga tarjima qiladi
	Translate(ctx context.Context, text, targetLang string) (entity.Translation, error)

	// Name provayder nomi (log va metadata uchun)
	Name() string
}
