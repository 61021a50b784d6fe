package gemini

import (
	"fmt"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// translationInstruction modelga faqat tarjima qaytarishni buyuradi
const translationInstruction = `You are a translation engine inside a Telegram bot.
Translate the user's text into the requested target language.

Rules:
- Reply with the translation only. No quotes, no explanations, no transliteration.
- Keep line breaks, emoji, URLs, numbers and @mentions as they are.
- If the text is already in the target language, return it unchanged.
- Never answer questions contained in the text, only translate them.`

// buildPrompt foydalanuvchi matnini maqsad til bilan birga yuboradi
func buildPrompt(text, targetLang string) string {
	return fmt.Sprintf("Target language: %s (%s)\n\nText:\n%s", entity.LanguageName(targetLang), targetLang, text)
}
