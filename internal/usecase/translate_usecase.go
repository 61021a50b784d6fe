package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// ErrTranslationFailed provayder barcha urinishlardan keyin ham javob bermadi
var ErrTranslationFailed = errors.New("translation failed")

// TranslateUseCase keshli va retry bilan tarjima
type TranslateUseCase interface {
	Translate(ctx context.Context, text, targetLang string) (entity.Translation, error)
}

// TranslateOptions retry budget va logger
type TranslateOptions struct {
	MaxRetries int
	RetryDelay time.Duration
	Logger     *log.Logger
}

type attemptOutcome int

const (
	attemptSucceeded attemptOutcome = iota
	attemptTransient
	attemptTerminal
)

type translateUseCase struct {
	translator repository.TranslatorRepository
	cache      repository.TranslationCache
	maxRetries int
	retryDelay time.Duration
	logger     *log.Logger
	flights    singleflight.Group

	wait func(ctx context.Context, d time.Duration) error
}

// NewTranslateUseCase yangi TranslateUseCase yaratish
func NewTranslateUseCase(translator repository.TranslatorRepository, cache repository.TranslationCache, opts TranslateOptions) TranslateUseCase {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = constants.MaxRetries
	}
	if opts.RetryDelay < 0 {
		opts.RetryDelay = constants.RetryDelay
	}
	if opts.Logger == nil {
		opts.Logger = logger.WarnLogger
	}
	return &translateUseCase{
		translator: translator,
		cache:      cache,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		logger:     opts.Logger,
		wait:       sleepContext,
	}
}

// Translate returns the cached translation when present. On a miss it calls
// the provider up to maxRetries times with a constant delay between attempts
// and caches the first success. Failed keys are never cached.
func (u *translateUseCase) Translate(ctx context.Context, text, targetLang string) (entity.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return entity.Translation{}, entity.ErrEmptyText
	}
	if cached, ok := u.cache.Lookup(text, targetLang); ok {
		return cached, nil
	}

	// Bir xil kalit uchun parallel so'rovlar bitta provayder chaqiruviga birlashadi
	key := u.cache.Key(text, targetLang)
	v, err, _ := u.flights.Do(key.TargetLang+"\x00"+key.TextPrefix, func() (interface{}, error) {
		if cached, ok := u.cache.Lookup(text, targetLang); ok {
			return cached, nil
		}
		return u.translateWithRetry(ctx, text, targetLang)
	})
	if err != nil {
		return entity.Translation{}, err
	}
	return v.(entity.Translation), nil
}

func (u *translateUseCase) translateWithRetry(ctx context.Context, text, targetLang string) (entity.Translation, error) {
	var lastErr error
	for attempt := 1; attempt <= u.maxRetries; attempt++ {
		result, err := u.translator.Translate(ctx, text, targetLang)
		outcome := classifyAttempt(ctx, err)

		if outcome == attemptSucceeded {
			result = u.fillMetadata(result, text, targetLang)
			u.cache.Insert(text, targetLang, result)
			return result, nil
		}

		lastErr = err
		u.logger.Printf("⚠️ Tarjima urinishi %d/%d muvaffaqiyatsiz (provider=%s lang=%s text=%q): %v",
			attempt, u.maxRetries, u.translator.Name(), targetLang, truncateForLog(text, 40), err)

		if outcome == attemptTerminal {
			return entity.Translation{}, fmt.Errorf("%w: %w", ErrTranslationFailed, err)
		}
		if attempt < u.maxRetries {
			if err := u.wait(ctx, u.retryDelay); err != nil {
				return entity.Translation{}, fmt.Errorf("%w: %w", ErrTranslationFailed, err)
			}
		}
	}
	return entity.Translation{}, fmt.Errorf("%w after %d attempts: %w", ErrTranslationFailed, u.maxRetries, lastErr)
}

func (u *translateUseCase) fillMetadata(result entity.Translation, text, targetLang string) entity.Translation {
	if result.SourceText == "" {
		result.SourceText = text
	}
	if result.TargetLang == "" {
		result.TargetLang = targetLang
	}
	if result.Provider == "" {
		result.Provider = u.translator.Name()
	}
	return result
}

// classifyAttempt: only a finished context stops the loop early, every other
// provider error is worth another attempt.
func classifyAttempt(ctx context.Context, err error) attemptOutcome {
	if err == nil {
		return attemptSucceeded
	}
	if ctx.Err() != nil {
		return attemptTerminal
	}
	return attemptTransient
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncateForLog(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
