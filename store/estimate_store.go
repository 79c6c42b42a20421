// Package store persists estimate records in SQLite. Each record is stored
// as a JSON document alongside a few indexed columns used for filtering, so
// the canonical schema lives in one place and old documents with legacy
// field spellings remain readable.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hseinsb/estimate-analyzer/dto"
)

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("estimate not found")

// ListFilter narrows a List call. Zero values mean "no filter".
type ListFilter struct {
	Status           dto.Status
	InsuranceCompany string
	Limit            int
}

const defaultListLimit = 100

// EstimateStore is the persistence boundary for estimate records.
type EstimateStore interface {
	Create(ctx context.Context, e *dto.Estimate) error
	GetByID(ctx context.Context, id string) (*dto.Estimate, error)
	List(ctx context.Context, filter ListFilter) ([]*dto.Estimate, error)
	Update(ctx context.Context, e *dto.Estimate) error
	Delete(ctx context.Context, id string) error
	RecentCounts(ctx context.Context, since time.Time) (total, errors int, err error)
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS estimates (
	id TEXT PRIMARY KEY,
	customer_name TEXT NOT NULL DEFAULT '',
	insurance_company TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	doc TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_status ON estimates (status);
CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates (created_at);
`

// Open opens (creating if needed) the SQLite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (EstimateStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Create(ctx context.Context, e *dto.Estimate) error {
	doc, err := encodeEstimate(e)
	if err != nil {
		return fmt.Errorf("encode estimate %s: %w", e.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO estimates (id, customer_name, insurance_company, status, created_at, updated_at, doc)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			customer_name = excluded.customer_name,
			insurance_company = excluded.insurance_company,
			status = excluded.status,
			updated_at = excluded.updated_at,
			doc = excluded.doc`,
		e.ID, e.CustomerName, e.InsuranceCompany, string(e.Status), e.CreatedAt, e.UpdatedAt, doc)
	if err != nil {
		return fmt.Errorf("insert estimate %s: %w", e.ID, err)
	}
	return nil
}

func (s *sqliteStore) GetByID(ctx context.Context, id string) (*dto.Estimate, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM estimates WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query estimate %s: %w", id, err)
	}
	return decodeEstimate(doc)
}

func (s *sqliteStore) List(ctx context.Context, filter ListFilter) ([]*dto.Estimate, error) {
	query := `SELECT doc FROM estimates`
	var args []any
	var where []string

	if filter.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, string(filter.Status))
	}
	if filter.InsuranceCompany != "" {
		where = append(where, `insurance_company = ?`)
		args = append(args, filter.InsuranceCompany)
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	var estimates []*dto.Estimate
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan estimate row: %w", err)
		}
		e, err := decodeEstimate(doc)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}

func (s *sqliteStore) Update(ctx context.Context, e *dto.Estimate) error {
	doc, err := encodeEstimate(e)
	if err != nil {
		return fmt.Errorf("encode estimate %s: %w", e.ID, err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE estimates
		 SET customer_name = ?, insurance_company = ?, status = ?, updated_at = ?, doc = ?
		 WHERE id = ?`,
		e.CustomerName, e.InsuranceCompany, string(e.Status), e.UpdatedAt, doc, e.ID)
	if err != nil {
		return fmt.Errorf("update estimate %s: %w", e.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete estimate %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) RecentCounts(ctx context.Context, since time.Time) (int, int, error) {
	var total, errCount int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		 FROM estimates WHERE created_at > ?`,
		string(dto.StatusError), since).Scan(&total, &errCount)
	if err != nil {
		return 0, 0, fmt.Errorf("count recent estimates: %w", err)
	}
	return total, errCount, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
