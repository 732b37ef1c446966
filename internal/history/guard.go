package history

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/kirlot/internal/translit"
)

const (
	guardTripFailures = 3
	guardOpenTimeout  = 30 * time.Second
)

type recorder interface {
	Record(ctx context.Context, dir translit.Direction, source, result string) error
}

// Guard wraps a recorder in a circuit breaker. After repeated failures it
// rejects records immediately with gobreaker.ErrOpenState until the breaker
// half-opens again, so a broken database never slows conversions down.
type Guard struct {
	next recorder
	cb   *gobreaker.CircuitBreaker
}

// NewGuard wraps next. State changes are logged on logger.
func NewGuard(next recorder, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := gobreaker.Settings{
		Name:        "history",
		MaxRequests: 1,
		Timeout:     guardOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= guardTripFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &Guard{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Record forwards to the wrapped recorder unless the breaker is open.
func (g *Guard) Record(ctx context.Context, dir translit.Direction, source, result string) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, g.next.Record(ctx, dir, source, result)
	})
	return err
}

// State returns the breaker state.
func (g *Guard) State() gobreaker.State {
	return g.cb.State()
}
