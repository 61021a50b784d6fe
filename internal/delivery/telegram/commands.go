package telegram

import (
	"context"
	"fmt"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, ev commandEvent) error {
	switch ev.Command {
	case "start", "help":
		code, err := h.preferenceUseCase.Language(ctx, ev.UserID)
		if err != nil {
			return err
		}
		return h.sendText(ev.ChatID, welcomeText(entity.LanguageName(code)), languageMenu())
	case "lang":
		return h.sendText(ev.ChatID, chooseLanguageText, languageMenu())
	default:
		return h.sendText(ev.ChatID, fmt.Sprintf(unknownCommandText, escapeHTML(ev.Command)), nil)
	}
}
