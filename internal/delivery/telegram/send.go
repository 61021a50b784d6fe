package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// sendText HTML xabar yuborish. Limitdan uzun xabar oddiy matn bo'laklari sifatida
// yuboriladi (HTML teglari bo'lak chegarasida buzilmasligi uchun), menyu oxirgi bo'lakda.
func (h *BotHandler) sendText(chatID int64, text string, markup interface{}) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	if utf8.RuneCountInString(text) <= constants.MessageLimit {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		_, err := h.bot.Send(msg)
		return err
	}

	chunks := splitIntoChunks(stripHTML(text), constants.MessageLimit)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if markup != nil && i == len(chunks)-1 {
			msg.ReplyMarkup = markup
		}
		if _, err := h.bot.Send(msg); err != nil {
			return fmt.Errorf("send chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

// editText callback xabarini yangilash
func (h *BotHandler) editText(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Request(edit); err != nil {
		// Xuddi shu tilni qayta tanlash: Telegram o'zgarmagan xabarni rad etadi
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		logger.WarnLogger.Printf("✏️ Xabarni tahrirlab bo'lmadi chat=%d msg=%d: %v", chatID, messageID, err)
		return h.sendText(chatID, text, markup)
	}
	return nil
}

// answerCallback callback query ga javob (alert yoki toast)
func (h *BotHandler) answerCallback(callbackID, text string, alert bool) error {
	if callbackID == "" {
		return nil
	}
	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = alert
	_, err := h.bot.Request(cfg)
	return err
}

// sendTyping "typing..." indikatori, xatosi muhim emas
func (h *BotHandler) sendTyping(chatID int64) {
	if _, err := h.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		logger.WarnLogger.Printf("typing action chat=%d: %v", chatID, err)
	}
}

// splitIntoChunks matnni limit (rune) bo'yicha bo'laklaydi, iloji bo'lsa qator oxirida
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	runes := []rune(s)
	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

var htmlUnescaper = strings.NewReplacer(
	"<b>", "", "</b>", "", "<i>", "", "</i>", "",
	"&lt;", "<", "&gt;", ">", "&amp;", "&",
)

// stripHTML bizning o'zimiz qo'ygan teglarni olib tashlaydi va escape ni qaytaradi
func stripHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
