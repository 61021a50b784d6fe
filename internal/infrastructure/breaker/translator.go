package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

// Options circuit breaker sozlamalari
type Options struct {
	// ConsecutiveFailures shuncha ketma-ket xatodan keyin breaker ochiladi
	ConsecutiveFailures uint32
	// OpenTimeout ochiq holatda qancha turadi (odatda retry delay ga teng)
	OpenTimeout time.Duration
}

type translator struct {
	inner repository.TranslatorRepository
	cb    *gobreaker.CircuitBreaker
	poll  time.Duration
}

// WrapTranslator provayderni circuit breaker bilan o'raydi.
// Ochiq breaker urinishni yemaydi: Translate ochiq davr tugashini yoki ctx ni
// kutadi, keyin provayderni chaqiradi.
func WrapTranslator(inner repository.TranslatorRepository, opts Options) repository.TranslatorRepository {
	if opts.ConsecutiveFailures == 0 {
		opts.ConsecutiveFailures = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = time.Second
	}
	poll := opts.OpenTimeout / 10
	if poll < 5*time.Millisecond {
		poll = 5 * time.Millisecond
	}

	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WarnLogger.Printf("🔌 Circuit breaker %s: %s -> %s", name, from, to)
		},
		// bekor qilingan so'rov provayder nosozligi emas
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	}

	return &translator{inner: inner, cb: gobreaker.NewCircuitBreaker(settings), poll: poll}
}

func (t *translator) Translate(ctx context.Context, text, targetLang string) (entity.Translation, error) {
	for {
		res, err := t.cb.Execute(func() (interface{}, error) {
			return t.inner.Translate(ctx, text, targetLang)
		})
		if err == nil {
			return res.(entity.Translation), nil
		}
		if !errors.Is(err, gobreaker.ErrOpenState) && !errors.Is(err, gobreaker.ErrTooManyRequests) {
			return entity.Translation{}, err
		}

		// ochiq yoki half-open band: provayder bo'shashini kutamiz
		timer := time.NewTimer(t.poll)
		select {
		case <-ctx.Done():
			timer.Stop()
			return entity.Translation{}, fmt.Errorf("%w: %w", err, ctx.Err())
		case <-timer.C:
		}
	}
}

func (t *translator) Name() string { return t.inner.Name() }

// State joriy holat (monitoring uchun)
func (t *translator) State() gobreaker.State { return t.cb.State() }
