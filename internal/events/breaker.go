package events

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrPublisherOpen = errors.New("publisher circuit is open")

// BreakerState is the state of a BreakerPublisher circuit
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// BreakerPublisher stops calling an unhealthy publisher after MaxFailures
// consecutive errors and retries it once ResetTimeout has passed.
type BreakerPublisher struct {
	next   Publisher
	config BreakerConfig
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewBreakerPublisher(next Publisher, config BreakerConfig) *BreakerPublisher {
	return &BreakerPublisher{
		next:   next,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

func (b *BreakerPublisher) Publish(ctx context.Context, event *LedgerEvent) error {
	if !b.allow() {
		return ErrPublisherOpen
	}

	if err := b.next.Publish(ctx, event); err != nil {
		b.recordFailure()
		return err
	}

	b.recordSuccess()
	return nil
}

func (b *BreakerPublisher) Close() error {
	return b.next.Close()
}

func (b *BreakerPublisher) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerPublisher) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.lastFailureTime) > b.config.ResetTimeout {
		b.state = StateHalfOpen
		b.halfOpenSuccesses = 0
	}

	return b.state != StateOpen
}

func (b *BreakerPublisher) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = StateClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *BreakerPublisher) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = b.now()

	switch b.state {
	case StateHalfOpen:
		b.state = StateOpen
		b.halfOpenSuccesses = 0
	case StateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = StateOpen
		}
	}
}
