package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fields is the field-name to value mapping of a store record.
// Link fields hold a slice of referenced record IDs.
type Fields map[string]any

// Record is a generic row returned by the record store.
type Record struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
	Fields      Fields    `json:"fields"`
}

// Clone returns a deep copy of the record's fields so callers can't mutate store state.
func (r Record) Clone() Record {
	return Record{ID: r.ID, CreatedTime: r.CreatedTime, Fields: r.Fields.Clone()}
}

// Clone returns a deep copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		c := make([]any, len(t))
		for i := range t {
			c[i] = cloneValue(t[i])
		}
		return c
	case []string:
		c := make([]string, len(t))
		copy(c, t)
		return c
	case map[string]any:
		c := make(map[string]any, len(t))
		for k, inner := range t {
			c[k] = cloneValue(inner)
		}
		return c
	default:
		return v
	}
}

// AsMap returns the raw record shape ({id, createdTime, fields}) handed to advanced consumers.
func (r Record) AsMap() map[string]any {
	return map[string]any{
		"id":          r.ID,
		"createdTime": r.CreatedTime.UTC().Format(time.RFC3339Nano),
		"fields":      map[string]any(r.Fields.Clone()),
	}
}

// NewRecordID returns an identifier shaped like the hosted store's ("rec" + 14 characters).
func NewRecordID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}
