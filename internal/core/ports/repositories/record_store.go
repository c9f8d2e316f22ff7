package repositories

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/models"
)

// RecordReader defines read operations against a table-oriented record store.
type RecordReader interface {
	// Query returns every record matching q, following store pages until q.Limit is reached.
	Query(ctx context.Context, table string, q models.Query) ([]models.Record, error)

	// QueryPage returns a single page of at most q.PageSize records starting at q.Offset.
	QueryPage(ctx context.Context, table string, q models.Query) (*models.Page, error)

	// Get retrieves one record by its store-assigned ID.
	Get(ctx context.Context, table, recordID string) (*models.Record, error)
}

// RecordWriter defines write operations against a table-oriented record store.
type RecordWriter interface {
	// Create inserts a record and returns it with its store-assigned ID and creation time.
	Create(ctx context.Context, table string, fields models.Fields) (*models.Record, error)

	// Update patches the given fields of an existing record. When preconditions are supplied the
	// update only happens if every precondition still holds; otherwise apperrors.ErrConflict.
	Update(ctx context.Context, table, recordID string, fields models.Fields, conds ...models.Precondition) (*models.Record, error)
}

// RecordStore combines reads, writes and a liveness check.
type RecordStore interface {
	RecordReader
	RecordWriter

	// Ping verifies the store is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
