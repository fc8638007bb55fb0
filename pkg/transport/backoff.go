package transport

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Dial retry defaults.
const (
	DefaultInitialBackoff = 250 * time.Millisecond
	DefaultMaxBackoff     = 8 * time.Second
	DefaultJitter         = 0.25
)

// Backoff yields exponentially growing delays with optional jitter.
type Backoff struct {
	mu sync.Mutex

	current time.Duration
	initial time.Duration
	max     time.Duration
	jitter  float64
	retries int

	rng *rand.Rand
}

// BackoffConfig configures a Backoff. Zero fields take the defaults.
type BackoffConfig struct {
	Initial time.Duration
	Max     time.Duration

	// Jitter is the maximum added delay as a fraction of the base delay.
	// Negative disables jitter.
	Jitter float64
}

// NewBackoff creates a Backoff.
func NewBackoff(cfg BackoffConfig) *Backoff {
	if cfg.Initial <= 0 {
		cfg.Initial = DefaultInitialBackoff
	}
	if cfg.Max < cfg.Initial {
		cfg.Max = max(DefaultMaxBackoff, cfg.Initial)
	}
	if cfg.Jitter == 0 {
		cfg.Jitter = DefaultJitter
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	return &Backoff{
		current: cfg.Initial,
		initial: cfg.Initial,
		max:     cfg.Max,
		jitter:  cfg.Jitter,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the jittered delay for this retry and doubles the base,
// capped at the maximum.
func (b *Backoff) Next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.current
	if b.jitter > 0 {
		d += time.Duration(float64(d) * b.jitter * b.rng.Float64())
	}
	b.retries++
	b.current = min(b.current*2, b.max)
	return d
}

// Reset returns to the initial delay.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = b.initial
	b.retries = 0
}

// Retries returns how many delays were handed out since the last Reset.
func (b *Backoff) Retries() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.retries
}

// DialRetry calls Dial up to attempts times, sleeping per backoff in
// between. attempts < 1 means a single try. The last dial error is returned
// when all attempts fail; ctx cancellation ends the wait early.
func DialRetry(ctx context.Context, address string, config ClientConfig, attempts int, backoff *Backoff) (*ClientConn, error) {
	if attempts < 1 {
		attempts = 1
	}
	if backoff == nil {
		backoff = NewBackoff(BackoffConfig{})
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			t := time.NewTimer(backoff.Next())
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, ctx.Err()
			case <-t.C:
			}
		}
		conn, err := Dial(ctx, address, config)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
