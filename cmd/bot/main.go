package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/yourusername/telegram-translate-bot/config"
	"github.com/yourusername/telegram-translate-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/breaker"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/cache"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/gemini"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/openai"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-translate-bot/internal/usecase"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

func main() {
	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AllowEmptySecrets {
		if missing := missingSecrets(cfg); len(missing) > 0 {
			logger.InfoLogger.Printf("Secretlar yetishmayapti (%s). Bot vaqtincha ishga tushmaydi.", strings.Join(missing, ", "))
			<-ctx.Done()
			return
		}
	}

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Tarjima provayderi (circuit breaker bilan)
	provider, closeProvider, err := newTranslator(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Tarjima provayderi yaratilmadi: %v", err)
	}
	defer closeProvider()
	translator := breaker.WrapTranslator(provider, breakerOptions(cfg))
	logger.InfoLogger.Printf("✅ Tarjima provayderi tayyor (%s)", translator.Name())

	// 2. Preference storage
	prefRepo, err := storage.NewPreferenceRepository(ctx, storage.Options{
		Kind:        cfg.PrefsStorage,
		PostgresDSN: cfg.PostgresDSN,
		SQLitePath:  cfg.PrefsDBPath,
		DefaultLang: cfg.DefaultLang,
	})
	if err != nil {
		log.Fatalf("❌ Preference storage ochilmadi: %v", err)
	}
	defer prefRepo.Close()

	// 3. Kesh va use case lar
	translationCache := cache.NewTranslationCache(cfg.CacheSize, cfg.CacheKeyLength)
	translateUseCase := usecase.NewTranslateUseCase(translator, translationCache, usecase.TranslateOptions{
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	preferenceUseCase := usecase.NewPreferenceUseCase(prefRepo)
	logger.InfoLogger.Printf("✅ Use cases tayyor (cache=%d, retries=%d, delay=%v)", cfg.CacheSize, cfg.MaxRetries, cfg.RetryDelay)

	// 4. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(cfg.TelegramToken, translateUseCase, preferenceUseCase, telegram.Options{
		WorkerCount:      cfg.WorkerCount,
		TranslateTimeout: cfg.TranslateTimeout,
	})
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")
	if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
		logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
	}

	hits, misses, size := translationCache.Stats()
	logger.InfoLogger.Printf("📊 Kesh: hits=%d misses=%d size=%d", hits, misses, size)
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

// newTranslator TRANSLATOR_PROVIDER bo'yicha provayder
func newTranslator(ctx context.Context, cfg *config.Config) (repository.TranslatorRepository, func(), error) {
	switch cfg.TranslatorProvider {
	case config.ProviderOpenAI:
		client, err := openai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	case config.ProviderGemini:
		client, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown translator provider %q", cfg.TranslatorProvider)
	}
}

// breakerOptions retry sozlamalaridan: ochiq davr RETRY_DELAY ga teng, chegara
// MAX_RETRIES dan kam emas
func breakerOptions(cfg *config.Config) breaker.Options {
	failures := uint32(5)
	if cfg.MaxRetries > int(failures) {
		failures = uint32(cfg.MaxRetries)
	}
	return breaker.Options{ConsecutiveFailures: failures, OpenTimeout: cfg.RetryDelay}
}

func missingSecrets(cfg *config.Config) []string {
	var missing []string
	if isEmptyOrDisabled(cfg.TelegramToken) {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	switch cfg.TranslatorProvider {
	case config.ProviderGemini:
		if isEmptyOrDisabled(cfg.GeminiAPIKey) {
			missing = append(missing, "GEMINI_API_KEY")
		}
	case config.ProviderOpenAI:
		if isEmptyOrDisabled(cfg.OpenAIAPIKey) {
			missing = append(missing, "OPENAI_API_KEY")
		}
	}
	return missing
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
