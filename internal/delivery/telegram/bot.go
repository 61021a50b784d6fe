package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/usecase"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// botAPI Telegram API ning biz ishlatadigan qismi (*tgbotapi.BotAPI yoki test fake)
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Options handler sozlamalari
type Options struct {
	WorkerCount      int
	QueueSize        int
	TranslateTimeout time.Duration
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot               botAPI
	translateUseCase  usecase.TranslateUseCase
	preferenceUseCase usecase.PreferenceUseCase
	workerPool        *workerPool
	translateTimeout  time.Duration
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	translateUseCase usecase.TranslateUseCase,
	preferenceUseCase usecase.PreferenceUseCase,
	opts Options,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.InfoLogger.Printf("✅ Bot authorized: @%s", bot.Self.UserName)

	return newBotHandler(bot, translateUseCase, preferenceUseCase, opts), nil
}

func newBotHandler(bot botAPI, translateUseCase usecase.TranslateUseCase, preferenceUseCase usecase.PreferenceUseCase, opts Options) *BotHandler {
	if opts.TranslateTimeout <= 0 {
		opts.TranslateTimeout = constants.TranslateTimeout
	}
	h := &BotHandler{
		bot:               bot,
		translateUseCase:  translateUseCase,
		preferenceUseCase: preferenceUseCase,
		translateTimeout:  opts.TranslateTimeout,
	}
	h.workerPool = newWorkerPool(h, opts.WorkerCount, opts.QueueSize)
	return h
}
