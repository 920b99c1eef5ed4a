// Package dbmetrics wraps *sql.DB so that every query is timed and counted.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/metrics"
)

// DBExecutor is the query surface used by repositories.
// Implemented by *sql.DB, *sql.Tx and *DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const defaultStatsInterval = 15 * time.Second

// DB is an instrumented *sql.DB
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap instruments db with m and starts a goroutine that publishes pool
// statistics every interval until stop is closed.
func Wrap(db *sql.DB, m *metrics.Metrics, interval time.Duration, stop <-chan struct{}) *DB {
	w := &DB{db: db, metrics: m}
	go w.collectStats(interval, stop)
	return w
}

// WrapWithDefault is Wrap with the default statistics interval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	return Wrap(db, m, defaultStatsInterval, stop)
}

func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.db.ExecContext(ctx, query, args...)
	w.observe("exec", start, err)
	return res, err
}

func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.observe("query", start, err)
	return rows, err
}

// QueryRowContext times only the round trip; scan errors surface to the caller.
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.observe("query_row", start, row.Err())
	return row
}

func (w *DB) observe(operation string, start time.Time, err error) {
	if w.metrics == nil {
		return
	}
	w.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		w.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (w *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	if w.metrics == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		w.publishStats()
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (w *DB) publishStats() {
	stats := w.db.Stats()
	w.metrics.DBOpenConns.Set(float64(stats.OpenConnections))
	w.metrics.DBInUseConns.Set(float64(stats.InUse))
}
