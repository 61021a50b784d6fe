package telegram

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
	"golang.org/x/time/rate"
)

var (
	errQueueFull   = errors.New("worker pool queue is full")
	errRateLimited = errors.New("rate limit exceeded")
	errPoolClosed  = errors.New("worker pool is shut down")
)

const (
	maxRequestsPerSecond   = 3
	requestQueueSize       = 100
	rateLimiterCleanupTime = 5 * time.Minute  // How often to clean up rate limiters
	rateLimiterMaxIdleTime = 10 * time.Minute // Max idle time before removing rate limiter
)

// workerPool tarjimalarni parallel qayta ishlaydi
type workerPool struct {
	requestQueue chan *translationJob
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	closeMu sync.RWMutex
	closed  bool
	started bool

	// Rate limiting per user
	limiters   map[int64]*userLimiter
	limitersMu sync.Mutex
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount, queueSize int) *workerPool {
	if workerCount <= 0 {
		workerCount = constants.DefaultWorkerCount
	}
	if queueSize <= 0 {
		queueSize = requestQueueSize
	}
	return &workerPool{
		requestQueue: make(chan *translationJob, queueSize),
		workerCount:  workerCount,
		handler:      handler,
		limiters:     make(map[int64]*userLimiter),
	}
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	wp.closeMu.Lock()
	if wp.started || wp.closed {
		wp.closeMu.Unlock()
		return
	}
	wp.started = true
	wp.closeMu.Unlock()

	logger.InfoLogger.Printf("Starting %d workers for parallel translation", wp.workerCount)
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}

	// Cleanup old rate limit entries periodically
	go wp.cleanupRateLimits(ctx)
}

// worker processes jobs from the queue
func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-wp.requestQueue:
			if !ok {
				return
			}
			if job == nil {
				continue
			}
			wp.handler.guard(job.event, func() error {
				return wp.handler.processTranslation(job)
			})
		}
	}
}

// submit navbatga qo'yadi. Limit oshsa yoki navbat to'la bo'lsa xato qaytaradi.
func (wp *workerPool) submit(job *translationJob) error {
	if !wp.allow(job.event.UserID) {
		return errRateLimited
	}

	wp.closeMu.RLock()
	defer wp.closeMu.RUnlock()
	if wp.closed {
		return errPoolClosed
	}

	select {
	case wp.requestQueue <- job:
		return nil
	default:
		logger.WarnLogger.Printf("Worker pool queue is full (%d/%d), rejecting request from user %d",
			len(wp.requestQueue), cap(wp.requestQueue), job.event.UserID)
		return errQueueFull
	}
}

// allow per-user token bucket
func (wp *workerPool) allow(userID int64) bool {
	wp.limitersMu.Lock()
	defer wp.limitersMu.Unlock()

	ul, ok := wp.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rate.Limit(maxRequestsPerSecond), maxRequestsPerSecond)}
		wp.limiters[userID] = ul
	}
	ul.lastSeen = time.Now()
	return ul.limiter.Allow()
}

// cleanupRateLimits removes idle limiters
func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := wp.pruneLimiters(now); removed > 0 {
				logger.InfoLogger.Printf("Cleaned up %d inactive rate limiters", removed)
			}
		}
	}
}

func (wp *workerPool) pruneLimiters(now time.Time) int {
	wp.limitersMu.Lock()
	defer wp.limitersMu.Unlock()

	removed := 0
	for userID, ul := range wp.limiters {
		if now.Sub(ul.lastSeen) > rateLimiterMaxIdleTime {
			delete(wp.limiters, userID)
			removed++
		}
	}
	return removed
}

// shutdown gracefully shuts down the worker pool
func (wp *workerPool) shutdown() {
	wp.closeMu.Lock()
	if wp.closed {
		wp.closeMu.Unlock()
		return
	}
	wp.closed = true
	close(wp.requestQueue)
	wp.closeMu.Unlock()

	logger.InfoLogger.Printf("Shutting down worker pool, %d messages in queue", len(wp.requestQueue))
	wp.wg.Wait()
	logger.InfoLogger.Println("Worker pool shut down successfully")
}
