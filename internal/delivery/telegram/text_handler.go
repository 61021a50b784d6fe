package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/usecase"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// translationJob worker pool ga yuboriladigan tarjima
type translationJob struct {
	ctx   context.Context
	event textEvent
	text  string
	lang  string
}

// handleText oddiy matnni tarjima qilish
func (h *BotHandler) handleText(ctx context.Context, ev textEvent) error {
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return h.sendText(ev.ChatID, emptyTextPrompt, nil)
	}

	lang, err := h.preferenceUseCase.Language(ctx, ev.UserID)
	if err != nil {
		return err
	}

	job := &translationJob{ctx: ctx, event: ev, text: text, lang: lang}
	if h.workerPool == nil {
		return h.processTranslation(job)
	}
	if err := h.workerPool.submit(job); err != nil {
		logger.WarnLogger.Printf("⚠️ [%s] user=%d so'rov rad etildi: %v", ev.RequestID, ev.UserID, err)
		return h.sendText(ev.ChatID, busyText, nil)
	}
	return nil
}

// processTranslation tarjima qilib natijani yuboradi
func (h *BotHandler) processTranslation(job *translationJob) error {
	ctx, cancel := context.WithTimeout(job.ctx, h.translateTimeout)
	defer cancel()

	ev := job.event
	h.sendTyping(ev.ChatID)

	started := time.Now()
	result, err := h.translateUseCase.Translate(ctx, job.text, job.lang)
	elapsed := time.Since(started)

	if err != nil {
		if errors.Is(err, usecase.ErrTranslationFailed) {
			logger.ErrorLogger.Printf("❌ [%s] tarjima xatosi user=%d lang=%s: %v", ev.RequestID, ev.UserID, job.lang, err)
			return h.sendText(ev.ChatID, translationFailedText, languageMenu())
		}
		return err
	}

	reply := translationText(job.text, result.Text, entity.LanguageName(job.lang), elapsed)
	return h.sendText(ev.ChatID, reply, languageMenu())
}
