package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageSize = 100

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var _ DB = (*pgxpool.Pool)(nil)

// Store keeps every logical table in one generic `records` table with jsonb fields.
type Store struct {
	db DB
}

// NewStore creates a PostgreSQL-backed record store.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

var _ portsrepo.RecordStore = (*Store)(nil)

func scanRecord(row pgx.Row) (*models.Record, error) {
	var (
		rec       models.Record
		rawFields []byte
	)
	if err := row.Scan(&rec.ID, &rec.CreatedTime, &rawFields); err != nil {
		return nil, err
	}
	fields, err := models.DecodeFields(rawFields)
	if err != nil {
		return nil, err
	}
	rec.Fields = fields
	rec.CreatedTime = rec.CreatedTime.UTC()
	return &rec, nil
}

func (s *Store) selectRecords(ctx context.Context, table string, q models.Query, limit, offset int) ([]models.Record, error) {
	b := &sqlBuilder{}
	where, err := b.where(table, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	query := "SELECT id, created_time, fields FROM records WHERE " + where + " ORDER BY " + b.orderBy(q.Sort)
	if limit > 0 {
		query += " LIMIT " + b.arg(limit)
	}
	if offset > 0 {
		query += " OFFSET " + b.arg(offset)
	}

	rows, err := s.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]models.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", table, err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s records: %w", table, err)
	}
	return out, nil
}

// Query returns every matching record up to q.Limit.
func (s *Store) Query(ctx context.Context, table string, q models.Query) ([]models.Record, error) {
	return s.selectRecords(ctx, table, q, q.Limit, 0)
}

// QueryPage returns one page; one extra row is fetched to decide whether another page exists.
func (s *Store) QueryPage(ctx context.Context, table string, q models.Query) (*models.Page, error) {
	start := 0
	if q.Offset != "" {
		pos, err := pagination.DecodeOffset(q.Offset, table)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start = pos
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	fetch := pageSize + 1
	if q.Limit > 0 {
		remaining := q.Limit - start
		if remaining <= 0 {
			return &models.Page{Records: []models.Record{}}, nil
		}
		if remaining < fetch {
			fetch = remaining
		}
	}

	recs, err := s.selectRecords(ctx, table, q, fetch, start)
	if err != nil {
		return nil, err
	}
	page := &models.Page{Records: recs}
	if len(recs) > pageSize {
		page.Records = recs[:pageSize]
		page.Offset = pagination.EncodeOffset(table, start+pageSize)
	}
	return page, nil
}

// Get retrieves one record by ID.
func (s *Store) Get(ctx context.Context, table, recordID string) (*models.Record, error) {
	row := s.db.QueryRow(ctx, `SELECT id, created_time, fields FROM records WHERE table_name = $1 AND id = $2`, table, recordID)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: record %s in table %s", apperrors.ErrNotFound, recordID, table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s record %s: %w", table, recordID, err)
	}
	return rec, nil
}

// Create inserts a record with a generated ID.
func (s *Store) Create(ctx context.Context, table string, fields models.Fields) (*models.Record, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO records (id, table_name, fields, created_time)
		VALUES ($1, $2, $3::jsonb, $4)
		RETURNING id, created_time, fields`,
		models.NewRecordID(), table, string(raw), time.Now().UTC())
	rec, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create %s record: %v", apperrors.ErrPersistence, table, err)
	}
	return rec, nil
}

// Update merges fields into the record; nil values remove keys. Preconditions are part of the
// UPDATE's WHERE clause, so the compare and the write are one atomic statement.
func (s *Store) Update(ctx context.Context, table, recordID string, fields models.Fields, conds ...models.Precondition) (*models.Record, error) {
	set, drop := splitPatch(fields)
	raw, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	b := &sqlBuilder{}
	query := fmt.Sprintf(`UPDATE records SET fields = (fields || %s::jsonb) - %s::text[], version = version + 1
		WHERE table_name = %s AND id = %s`, b.arg(string(raw)), b.arg(drop), b.arg(table), b.arg(recordID))
	if len(conds) > 0 {
		pre, err := b.preconditions(conds)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += " AND " + pre
	}
	query += " RETURNING id, created_time, fields"

	rec, err := scanRecord(s.db.QueryRow(ctx, query, b.args...))
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: failed to update %s record %s: %v", apperrors.ErrPersistence, table, recordID, err)
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM records WHERE table_name = $1 AND id = $2)`, table, recordID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%w: failed to check %s record %s: %v", apperrors.ErrPersistence, table, recordID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: record %s in table %s", apperrors.ErrNotFound, recordID, table)
	}
	return nil, fmt.Errorf("%w: record %s in table %s changed concurrently", apperrors.ErrConflict, recordID, table)
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
