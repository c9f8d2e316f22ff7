package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/pagination"
)

const defaultPageSize = 100

// Store is an in-process RecordStore. Field values are round-tripped through JSON on the way
// in so callers observe the same shapes a REST store returns. Preconditions are checked and
// applied under a single lock, so a conditional update is atomic.
type Store struct {
	mu     sync.RWMutex
	tables map[string][]*models.Record
	byID   map[string]map[string]*models.Record
	now    func() time.Time
	// last creation time handed out; creation times strictly increase
	lastCreated time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for record creation times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty in-memory record store.
func New(opts ...Option) *Store {
	s := &Store{
		tables: make(map[string][]*models.Record),
		byID:   make(map[string]map[string]*models.Record),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portsrepo.RecordStore = (*Store)(nil)

// Seed inserts a record with a caller-chosen ID, replacing any existing record with that ID.
func (s *Store) Seed(table string, rec models.Record) error {
	fields, err := models.Normalize(rec.Fields)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if rec.ID == "" {
		rec.ID = models.NewRecordID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.CreatedTime.IsZero() {
		rec.CreatedTime = s.stampLocked()
	}
	s.insertLocked(table, &models.Record{ID: rec.ID, CreatedTime: rec.CreatedTime, Fields: fields})
	return nil
}

func (s *Store) stampLocked() time.Time {
	t := s.now().UTC()
	if !t.After(s.lastCreated) {
		t = s.lastCreated.Add(time.Nanosecond)
	}
	s.lastCreated = t
	return t
}

func (s *Store) insertLocked(table string, rec *models.Record) {
	if s.byID[table] == nil {
		s.byID[table] = make(map[string]*models.Record)
	}
	if existing, ok := s.byID[table][rec.ID]; ok {
		*existing = *rec
		return
	}
	s.byID[table][rec.ID] = rec
	s.tables[table] = append(s.tables[table], rec)
}

// Query returns every matching record, sorted, capped at q.Limit.
func (s *Store) Query(ctx context.Context, table string, q models.Query) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.selectLocked(table, q)
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return cloneAll(matched), nil
}

// QueryPage returns one page of matching records. The returned offset is empty on the last page.
func (s *Store) QueryPage(ctx context.Context, table string, q models.Query) (*models.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
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

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.selectLocked(table, q)
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	if start >= len(matched) {
		return &models.Page{Records: []models.Record{}}, nil
	}
	end := start + pageSize
	page := &models.Page{}
	if end < len(matched) {
		page.Offset = pagination.EncodeOffset(table, end)
	} else {
		end = len(matched)
	}
	page.Records = cloneAll(matched[start:end])
	return page, nil
}

func (s *Store) selectLocked(table string, q models.Query) []*models.Record {
	matched := make([]*models.Record, 0)
	for _, rec := range s.tables[table] {
		if matchesFilter(rec.Fields, q.Filter) {
			matched = append(matched, rec)
		}
	}
	if len(q.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, sf := range q.Sort {
				c := compareField(matched[i], matched[j], sf.Field)
				if c == 0 {
					continue
				}
				if sf.Direction == models.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	return matched
}

// Get retrieves one record by ID.
func (s *Store) Get(ctx context.Context, table, recordID string) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[table][recordID]
	if !ok {
		return nil, fmt.Errorf("%w: record %s in table %s", apperrors.ErrNotFound, recordID, table)
	}
	clone := rec.Clone()
	return &clone, nil
}

// Create inserts a new record with a generated ID.
func (s *Store) Create(ctx context.Context, table string, fields models.Fields) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	normalized, err := models.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &models.Record{ID: models.NewRecordID(), CreatedTime: s.stampLocked(), Fields: normalized}
	s.insertLocked(table, rec)
	clone := rec.Clone()
	return &clone, nil
}

// Update patches fields of an existing record. A nil value clears the field.
func (s *Store) Update(ctx context.Context, table, recordID string, fields models.Fields, conds ...models.Precondition) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patch, err := models.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[table][recordID]
	if !ok {
		return nil, fmt.Errorf("%w: record %s in table %s", apperrors.ErrNotFound, recordID, table)
	}
	for _, cond := range conds {
		if !cond.Holds(rec.Fields[cond.Field]) {
			return nil, fmt.Errorf("%w: field %q of record %s no longer holds %v", apperrors.ErrConflict, cond.Field, recordID, cond.Equals)
		}
	}
	if rec.Fields == nil {
		rec.Fields = models.Fields{}
	}
	for k, v := range patch {
		if v == nil {
			delete(rec.Fields, k)
			continue
		}
		rec.Fields[k] = v
	}
	clone := rec.Clone()
	return &clone, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func compareField(a, b *models.Record, field string) int {
	if field == models.FieldCreated {
		_, aSet := a.Fields[field]
		_, bSet := b.Fields[field]
		if !aSet && !bSet {
			return a.CreatedTime.Compare(b.CreatedTime)
		}
	}
	return models.CompareValues(a.Fields[field], b.Fields[field])
}

func cloneAll(recs []*models.Record) []models.Record {
	out := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Clone())
	}
	return out
}
