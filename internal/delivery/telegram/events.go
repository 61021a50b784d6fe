package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type eventMeta struct {
	RequestID string
	UserID    int64
	ChatID    int64
}

// inboundEvent bitta update dan olingan hodisa
type inboundEvent interface {
	meta() eventMeta
}

type commandEvent struct {
	eventMeta
	Command string // "start", "help", "lang", ...
	Args    string
}

type textEvent struct {
	eventMeta
	Text string
}

type callbackEvent struct {
	eventMeta
	CallbackID string
	MessageID  int // 0 bo'lsa tahrirlanadigan xabar yo'q
	Data       string
}

func (e eventMeta) meta() eventMeta { return e }

// eventFromUpdate update ni hodisaga aylantiradi; bizga kerak bo'lmagan update lar uchun false
func eventFromUpdate(update tgbotapi.Update) (inboundEvent, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.From == nil {
			return nil, false
		}
		ev := callbackEvent{
			eventMeta:  eventMeta{RequestID: newRequestID(), UserID: cb.From.ID, ChatID: cb.From.ID},
			CallbackID: cb.ID,
			Data:       cb.Data,
		}
		if cb.Message != nil && cb.Message.Chat != nil {
			ev.ChatID = cb.Message.Chat.ID
			ev.MessageID = cb.Message.MessageID
		}
		return ev, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return nil, false
	}
	meta := eventMeta{RequestID: newRequestID(), UserID: msg.From.ID, ChatID: msg.Chat.ID}

	if msg.IsCommand() {
		return commandEvent{
			eventMeta: meta,
			Command:   strings.ToLower(msg.Command()),
			Args:      strings.TrimSpace(msg.CommandArguments()),
		}, true
	}
	// Matnsiz xabarlar (stiker, rasm) bo'sh matn sifatida qabul qilinadi
	return textEvent{eventMeta: meta, Text: msg.Text}, true
}
