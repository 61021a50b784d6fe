package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

const (
	chooseLanguageText = "Choose translation language:"
	emptyTextPrompt    = "Please send text to translate"
	unknownCommandText = "Unknown command /%s. Use /help to see what I can do."
	genericErrorText   = "⚠ Something went wrong. Please try again later."
	busyText           = "⚠️ Too many requests. Please wait a moment and try again."

	translationFailedText = "⚠ Translation failed. Try to:\n" +
		"- shorten the text\n" +
		"- try again later\n" +
		"- change the translation language (/lang)"

	languageChangedAlert      = "Translation language changed to %s"
	unsupportedLanguageAlert  = "⚠ Unsupported language"
	languageChangeFailedAlert = "⚠ Error while changing language"
)

// languageMenu jadvaldagi barcha tillar bitta qatorda
func languageMenu() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entity.SupportedLanguages))
	for _, l := range entity.SupportedLanguages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(l.Label, l.CallbackData()))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func welcomeText(langName string) string {
	return fmt.Sprintf("🤖 <b>I'm a translator bot!</b>\n\n"+
		"Send me any text and I'll translate it into the selected language.\n"+
		"Current translation language: <b>%s</b>\n\n"+
		"Use the buttons below to change the language.", escapeHTML(langName))
}

func languageSetText(langName string) string {
	return fmt.Sprintf("Translation language set: <b>%s</b>\n\nSend me text to translate:", escapeHTML(langName))
}

func translationText(original, translated, langName string, elapsed time.Duration) string {
	return fmt.Sprintf("🌍 <b>Original</b>:\n%s\n\n🔁 <b>Translation</b> (%s):\n%s\n\n⏱ <i>Processed in %.1fs</i>",
		escapeHTML(original), escapeHTML(langName), escapeHTML(translated), elapsed.Seconds())
}

func escapeHTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
