package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/CardProof/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. Counters reset when their window elapses.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		cfg:     cfg,
		logger:  logger,
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.cfg.Enabled
}

// Allow reports whether the client identified by ip may proceed. When the
// request is rejected it also returns how long the client should wait.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.RLock()
	count, exists := rl.clients[ip]
	rl.RUnlock()

	if exists && count >= rl.cfg.RequestsPerTimeFrame {
		rl.logger.Debugf("Rate limit exceeded for %s", ip)
		return false, rl.cfg.TimeFrame
	}

	rl.Lock()
	if !exists {
		// First request of the window schedules the reset.
		time.AfterFunc(rl.cfg.TimeFrame, func() {
			rl.resetCount(ip)
		})
	}
	rl.clients[ip]++
	rl.Unlock()

	return true, 0
}

func (rl *FixedWindowRateLimiter) resetCount(ip string) {
	rl.Lock()
	delete(rl.clients, ip)
	rl.Unlock()
}
