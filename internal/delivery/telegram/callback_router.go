package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// errCallbackAnswered callback ga javob allaqachon yuborilgan: guard qayta javob bermaydi
var errCallbackAnswered = errors.New("callback already answered")

// handleCallback inline tugmalar
func (h *BotHandler) handleCallback(ctx context.Context, ev callbackEvent) error {
	code, ok := entity.ParseLanguageCallback(ev.Data)
	if !ok {
		// Eski yoki begona tugma: spinner to'xtasin
		return h.answerCallback(ev.CallbackID, "", false)
	}

	lang, err := h.preferenceUseCase.SetLanguage(ctx, ev.UserID, code)
	if errors.Is(err, entity.ErrUnsupportedLanguage) {
		logger.InfoLogger.Printf("[%s] user=%d noma'lum til kodi %q", ev.RequestID, ev.UserID, code)
		return h.answerCallback(ev.CallbackID, unsupportedLanguageAlert, true)
	}
	if err != nil {
		return err
	}

	answered := true
	if err := h.answerCallback(ev.CallbackID, fmt.Sprintf(languageChangedAlert, lang.Name), true); err != nil {
		logger.WarnLogger.Printf("[%s] callback javobi yuborilmadi: %v", ev.RequestID, err)
		answered = false
	}

	text := languageSetText(lang.Name)
	if ev.MessageID == 0 {
		err = h.sendText(ev.ChatID, text, languageMenu())
	} else {
		err = h.editText(ev.ChatID, ev.MessageID, text, languageMenu())
	}
	if err != nil && answered {
		return fmt.Errorf("%w: %w", errCallbackAnswered, err)
	}
	return err
}
