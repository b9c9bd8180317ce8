// Package timeouts holds the process-wide request deadline and the
// latency waits applied before admin sign-in, public submissions and
// contact messages.
//
// Values are set once at startup from configuration with Configure; until
// then the defaults below apply.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default values (used if Configure is not called).
const (
	DefaultRequest      = 30 * time.Second
	DefaultLoginDelay   = 1 * time.Second
	DefaultSubmitDelay  = 1500 * time.Millisecond
	DefaultContactDelay = 1 * time.Second
)

var mu sync.RWMutex

var (
	request      = DefaultRequest
	loginDelay   = DefaultLoginDelay
	submitDelay  = DefaultSubmitDelay
	contactDelay = DefaultContactDelay
)

// Request returns the deadline for a whole HTTP request.
func Request() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return request
}

// LoginDelay returns the wait applied before an admin credential check
// resolves.
func LoginDelay() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return loginDelay
}

// SubmitDelay returns the wait applied before a listing or need
// submission is accepted.
func SubmitDelay() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return submitDelay
}

// ContactDelay returns the wait applied before a contact message is
// delivered.
func ContactDelay() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return contactDelay
}

// Config holds timeout configuration values.
// Negative values are ignored. A zero delay disables that wait; a zero
// Request keeps the current deadline.
type Config struct {
	Request      time.Duration
	LoginDelay   time.Duration
	SubmitDelay  time.Duration
	ContactDelay time.Duration
}

// Configure installs cfg. Call it during startup before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Request > 0 {
		request = cfg.Request
	}
	if cfg.LoginDelay >= 0 {
		loginDelay = cfg.LoginDelay
	}
	if cfg.SubmitDelay >= 0 {
		submitDelay = cfg.SubmitDelay
	}
	if cfg.ContactDelay >= 0 {
		contactDelay = cfg.ContactDelay
	}
}

// Reset restores all values to their defaults.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	request = DefaultRequest
	loginDelay = DefaultLoginDelay
	submitDelay = DefaultSubmitDelay
	contactDelay = DefaultContactDelay
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Request:      request,
		LoginDelay:   loginDelay,
		SubmitDelay:  submitDelay,
		ContactDelay: contactDelay,
	}
}

// Delay blocks for d or until ctx is done, whichever comes first. It
// returns ctx.Err() when the caller gave up before the wait finished.
// A non-positive d returns immediately.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Log writes the active configuration, once at startup.
func Log(logger *zap.Logger) {
	c := Current()
	logger.Info("timeouts configured",
		zap.Duration("request", c.Request),
		zap.Duration("login_delay", c.LoginDelay),
		zap.Duration("submit_delay", c.SubmitDelay),
		zap.Duration("contact_delay", c.ContactDelay))
}
