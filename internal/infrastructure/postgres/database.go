package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var dbTracer = otel.Tracer("bankfront.db")

// DB wraps sqlx.DB and traces every statement the repositories issue.
type DB struct {
	*sqlx.DB
}

func New(connStr string) (*DB, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// Wrap adapts an existing sqlx handle, e.g. one backed by sqlmock.
func Wrap(db *sqlx.DB) *DB {
	return &DB{db}
}

func (db *DB) Close() error {
	return db.DB.Close()
}

func (db *DB) startSpan(ctx context.Context, name, query string) (context.Context, trace.Span) {
	return dbTracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", extractSQLVerb(query)),
		attribute.String("db.statement", compactQuery(query)),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetContext wraps sqlx.DB.GetContext with tracing.
func (db *DB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	ctx, span := db.startSpan(ctx, "db.Get", query)
	err := db.DB.GetContext(ctx, dest, query, args...)
	endSpan(span, err)
	return err
}

// SelectContext wraps sqlx.DB.SelectContext with tracing.
func (db *DB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	ctx, span := db.startSpan(ctx, "db.Select", query)
	err := db.DB.SelectContext(ctx, dest, query, args...)
	endSpan(span, err)
	return err
}

// compactQuery collapses whitespace so multi-line statements read well in
// traces. Every statement here is parameterized, so no values leak.
func compactQuery(q string) string {
	s := strings.Join(strings.Fields(q), " ")
	if len(s) > 256 {
		return s[:256] + "..."
	}
	return s
}

func extractSQLVerb(q string) string {
	q = strings.TrimSpace(q)
	if idx := strings.IndexAny(q, " \n\t"); idx > 0 {
		return strings.ToUpper(q[:idx])
	}
	return strings.ToUpper(q)
}
