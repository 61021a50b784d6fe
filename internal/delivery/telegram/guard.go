package telegram

import (
	"errors"
	"runtime/debug"

	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// guard har bir hodisa handlerini o'raydi: panic va kutilmagan xatolar shu yerda
// log qilinadi, foydalanuvchiga umumiy uzr yuboriladi. Dispatch loop to'xtamaydi.
func (h *BotHandler) guard(ev inboundEvent, fn func() error) {
	m := ev.meta()
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorLogger.Printf("💥 [%s] panic user=%d: %v\n%s", m.RequestID, m.UserID, r, debug.Stack())
			h.replyFailure(ev, nil)
		}
	}()

	if err := fn(); err != nil {
		logger.ErrorLogger.Printf("❌ [%s] %T user=%d: %v", m.RequestID, ev, m.UserID, err)
		h.replyFailure(ev, err)
	}
}

func (h *BotHandler) replyFailure(ev inboundEvent, cause error) {
	if cb, ok := ev.(callbackEvent); ok {
		if errors.Is(cause, errCallbackAnswered) {
			return
		}
		if err := h.answerCallback(cb.CallbackID, languageChangeFailedAlert, true); err != nil {
			logger.ErrorLogger.Printf("[%s] callback javobi yuborilmadi: %v", cb.RequestID, err)
		}
		return
	}
	m := ev.meta()
	if err := h.sendText(m.ChatID, genericErrorText, nil); err != nil {
		logger.ErrorLogger.Printf("[%s] uzr xabari yuborilmadi: %v", m.RequestID, err)
	}
}
