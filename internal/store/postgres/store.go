// Package postgres implements the domain store against the remote
// relational backend.
package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"portfoliokollen/internal/store"
	"portfoliokollen/pkg/metrics"
)

var _ store.Store = (*Store)(nil)

// Store talks to PostgreSQL through a pgx pool. All calls pass through a
// circuit breaker: when the database has been failing, the breaker opens
// and calls surface store.ErrBackend without touching the pool. The
// breaker never retries anything.
type Store struct {
	db     *pgxpool.Pool
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func New(db *pgxpool.Pool, logger *zap.Logger) *Store {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "postgres-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing record is an answer, not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, store.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &Store{db: db, cb: cb, logger: logger}
}

// run executes one store operation through the breaker and records its
// latency.
func (s *Store) run(op string, fn func() error) error {
	start := time.Now()
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	metrics.RecordStoreOpDuration(op, "postgres", time.Since(start))

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", store.ErrBackend, err)
	}
	return err
}

// backendErr tags a raw pgx failure with the closed error taxonomy.
func backendErr(err error) error {
	return fmt.Errorf("%w: %v", store.ErrBackend, err)
}
