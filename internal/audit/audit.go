// Package audit keeps a write-only PostgreSQL history of admin order
// notifications. The watcher's acknowledged set stays ephemeral; this trail
// exists so operations can reconstruct what was surfaced and how it was
// resolved after the fact.
package audit

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/adminwatch"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS order_notifications (
    id          BIGSERIAL PRIMARY KEY,
    order_id    BIGINT      NOT NULL,
    event       TEXT        NOT NULL,
    outcome     TEXT,
    detail      TEXT,
    occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Log records watcher events to PostgreSQL. It implements adminwatch.Sink;
// writes are best-effort and never influence the watcher.
type Log struct {
	db *sql.DB
}

// Open connects to PostgreSQL and ensures the audit table exists.
func Open(connStr string) (*Log, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Log{db: db}, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

func (l *Log) OrderSurfaced(ctx context.Context, order domain.Order) {
	l.record(ctx, order.ID, "surfaced", "", "")
}

func (l *Log) OrderResolved(ctx context.Context, order domain.Order, outcome adminwatch.Outcome, callErr error) {
	detail := ""
	if callErr != nil {
		detail = callErr.Error()
	}
	l.record(ctx, order.ID, "resolved", string(outcome), detail)
}

func (l *Log) record(ctx context.Context, orderID int64, event, outcome, detail string) {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO order_notifications (order_id, event, outcome, detail)
		 VALUES ($1, $2, $3, NULLIF($4, ''))`,
		orderID, event, nullable(outcome), detail,
	)
	if err != nil {
		log.Printf("[Audit] Failed to record %s for order %d: %v", event, orderID, err)
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
