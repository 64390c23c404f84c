package repository

import (
	"context"
	"database/sql"
	"fmt"

	"WebHub/internal/domain/models"
	"WebHub/internal/domain/repository"
)

// ClickHouseJournal stores lookup events in a MergeTree table.
type ClickHouseJournal struct {
	db    *sql.DB
	table string
}

// NewClickHouseJournal uses table, which may be database-qualified.
func NewClickHouseJournal(db *sql.DB, table string) *ClickHouseJournal {
	return &ClickHouseJournal{db: db, table: table}
}

// LookupSchema returns the DDL for the journal table.
func LookupSchema(database, table string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
	at DateTime64(3, 'UTC'),
	query String,
	symbol LowCardinality(String),
	region LowCardinality(String),
	outcome LowCardinality(String),
	price Float64,
	currency LowCardinality(String),
	latency_ms Int64
) ENGINE = MergeTree
ORDER BY at`, database, table),
	}
}

func (j *ClickHouseJournal) Append(ctx context.Context, e *models.LookupEvent) error {
	q := fmt.Sprintf("INSERT INTO %s (at, query, symbol, region, outcome, price, currency, latency_ms) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", j.table)
	_, err := j.db.ExecContext(ctx, q,
		e.At.UTC(),
		e.Query,
		e.Symbol,
		e.Region,
		e.Outcome,
		e.Price,
		e.Currency,
		e.LatencyMS,
	)
	return err
}

// Recent returns the newest n events, newest first.
func (j *ClickHouseJournal) Recent(ctx context.Context, n int) ([]models.LookupEvent, error) {
	q := fmt.Sprintf("SELECT at, query, symbol, region, outcome, price, currency, latency_ms FROM %s ORDER BY at DESC LIMIT ?", j.table)
	rows, err := j.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.LookupEvent, 0, n)
	for rows.Next() {
		var e models.LookupEvent
		if err := rows.Scan(&e.At, &e.Query, &e.Symbol, &e.Region, &e.Outcome, &e.Price, &e.Currency, &e.LatencyMS); err != nil {
			return nil, err
		}
		e.At = e.At.UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close is a no-op; the pool belongs to pkg/clickhouse.Client.
func (j *ClickHouseJournal) Close() error {
	return nil
}

var (
	_ repository.Journal       = (*ClickHouseJournal)(nil)
	_ repository.JournalReader = (*ClickHouseJournal)(nil)
)
