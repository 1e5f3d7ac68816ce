package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"recurrence-ledger/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// Publisher is anything able to announce a materialized occurrence
type Publisher interface {
	PublishOccurrenceMaterialized(ctx context.Context, transaction *models.Transaction) error
}

// GuardedPublisher stops calling a failing broker until ResetTimeout has passed
type GuardedPublisher struct {
	next   Publisher
	config CircuitBreakerConfig
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewGuardedPublisher(next Publisher, config CircuitBreakerConfig) *GuardedPublisher {
	return &GuardedPublisher{
		next:   next,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

func (g *GuardedPublisher) PublishOccurrenceMaterialized(ctx context.Context, transaction *models.Transaction) error {
	if g.isOpen() {
		return ErrCircuitBreakerOpen
	}

	if err := g.next.PublishOccurrenceMaterialized(ctx, transaction); err != nil {
		g.recordFailure()
		return err
	}

	g.recordSuccess()
	return nil
}

func (g *GuardedPublisher) State() BreakerState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *GuardedPublisher) isOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateOpen && g.now().Sub(g.lastFailureTime) > g.config.ResetTimeout {
		g.state = StateHalfOpen
		g.halfOpenSuccesses = 0
		return false
	}

	return g.state == StateOpen
}

func (g *GuardedPublisher) recordSuccess() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateHalfOpen:
		g.halfOpenSuccesses++
		if g.halfOpenSuccesses >= g.config.HalfOpenMaxSucc {
			g.state = StateClosed
			g.failures = 0
			g.halfOpenSuccesses = 0
		}
	case StateClosed:
		g.failures = 0
	}
}

func (g *GuardedPublisher) recordFailure() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastFailureTime = g.now()

	switch g.state {
	case StateHalfOpen:
		g.state = StateOpen
		g.halfOpenSuccesses = 0
	case StateClosed:
		g.failures++
		if g.failures >= g.config.MaxFailures {
			g.state = StateOpen
			g.halfOpenSuccesses = 0
		}
	}
}
