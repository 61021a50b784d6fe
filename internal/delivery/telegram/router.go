package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// Start botni ishga tushirish. ctx bekor qilinguncha update larni o'qiydi.
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)
	logger.InfoLogger.Println("🚀 Bot update larni kutmoqda")

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.workerPool.shutdown()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				h.workerPool.shutdown()
				return nil
			}
			// Har bir update alohida goroutine da
			go h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate bitta update ni tegishli handlerga yo'naltiradi
func (h *BotHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ev, ok := eventFromUpdate(update)
	if !ok {
		return
	}

	switch e := ev.(type) {
	case commandEvent:
		h.guard(e, func() error { return h.handleCommand(ctx, e) })
	case textEvent:
		h.guard(e, func() error { return h.handleText(ctx, e) })
	case callbackEvent:
		h.guard(e, func() error { return h.handleCallback(ctx, e) })
	}
}
