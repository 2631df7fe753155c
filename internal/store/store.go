// Package store provides the SQLite-backed expense record store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"outlay/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Source is the record-source contract the rest of the program depends
// on. The store is append-only: insert and read, never update/delete.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Expense, error)
	FetchByCategory(ctx context.Context, cat model.Category) ([]model.Expense, error)
	FetchByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error)
	Insert(ctx context.Context, e model.Expense) (int64, error)
}

// SQLite implements Source against a local SQLite database.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

var _ Source = (*SQLite)(nil)

// Open opens or creates the expense database at the given path and
// brings the schema up to date.
func Open(dbPath string, logger zerolog.Logger) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening expense db: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating expense db: %w", err)
	}

	return &SQLite{db: db, log: logger.With().Str("component", "store").Logger()}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Insert validates and persists a new expense, returning the
// store-assigned id. This is the only write path.
func (s *SQLite) Insert(ctx context.Context, e model.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, fmt.Errorf("validating expense: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (created_at, category, amount, note) VALUES (?, ?, ?, ?)`,
		e.Timestamp, string(e.Category), e.Amount.String(), e.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}

	s.log.Debug().
		Int64("id", id).
		Str("category", string(e.Category)).
		Str("amount", e.Amount.String()).
		Msg("expense saved")

	return id, nil
}

const selectColumns = `SELECT id, created_at, category, amount, note FROM expenses`

// FetchAll returns a snapshot of every record, newest first.
func (s *SQLite) FetchAll(ctx context.Context) ([]model.Expense, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}
	return s.scan(rows)
}

// FetchByCategory is the store-side pushdown of the category filter.
func (s *SQLite) FetchByCategory(ctx context.Context, cat model.Category) ([]model.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE category = ? ORDER BY created_at DESC, id DESC`, string(cat))
	if err != nil {
		return nil, fmt.Errorf("fetching expenses by category: %w", err)
	}
	return s.scan(rows)
}

// FetchByDateRange is the store-side pushdown of the date-range
// filter. Both bounds are inclusive full days.
func (s *SQLite) FetchByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	lo := start.Format(model.DateLayout) + " 00:00:00"
	hi := end.Format(model.DateLayout) + " 23:59:59"

	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE created_at BETWEEN ? AND ? ORDER BY created_at DESC, id DESC`, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("fetching expenses by date range: %w", err)
	}
	return s.scan(rows)
}

// scan materializes rows into expenses. Amounts that no longer parse
// become zero, which the engine's skip-and-report path drops; the
// record itself is still returned so listings stay complete.
func (s *SQLite) scan(rows *sql.Rows) ([]model.Expense, error) {
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			e      model.Expense
			cat    string
			amount string
			note   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &cat, &amount, &note); err != nil {
			return nil, fmt.Errorf("scanning expense row: %w", err)
		}
		e.Category = model.Category(cat)
		if note.Valid {
			e.Note = note.String
		}

		amt, err := decimal.NewFromString(amount)
		if err != nil {
			s.log.Warn().Int64("id", e.ID).Str("amount", amount).Msg("stored amount does not parse")
			amt = decimal.Zero
		}
		e.Amount = amt

		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading expense rows: %w", err)
	}
	return expenses, nil
}
