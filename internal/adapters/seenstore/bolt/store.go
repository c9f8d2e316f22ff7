// Package bolt keeps the set of trigger item IDs a poller has already emitted.
//
// Each trigger gets its own bucket; keys are record IDs and values are the UTC time the
// item was first seen. The change poller itself is stateless, so deduplication across
// polls lives here, on the caller's side.
package bolt

import (
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

// Store wraps a BoltDB file.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (or creates) the seen-ID database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open seen store %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Unseen returns the IDs from ids that are not yet recorded for trigger, in input order.
// Duplicates within ids are returned once. Nothing is recorded; call MarkSeen once an
// item has been handed off.
func (s *Store) Unseen(trigger string, ids []string) ([]string, error) {
	fresh := make([]string, 0, len(ids))
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(trigger))
		listed := make(map[string]bool, len(ids))
		for _, id := range ids {
			if listed[id] {
				continue
			}
			listed[id] = true
			if b != nil && b.Get([]byte(id)) != nil {
				continue
			}
			fresh = append(fresh, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read seen IDs for %s: %w", trigger, err)
	}
	return fresh, nil
}

// MarkSeen records id for trigger. Marking an ID twice keeps the first timestamp.
func (s *Store) MarkSeen(trigger, id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(trigger))
		if err != nil {
			return err
		}
		if b.Get([]byte(id)) != nil {
			return nil
		}
		return b.Put([]byte(id), []byte(s.now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("failed to mark %s seen for %s: %w", id, trigger, err)
	}
	return nil
}

// Seen reports whether id has been recorded for trigger.
func (s *Store) Seen(trigger, id string) (bool, error) {
	seen := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(trigger))
		if b == nil {
			return nil
		}
		seen = b.Get([]byte(id)) != nil
		return nil
	})
	return seen, err
}

// Count returns how many IDs are recorded for trigger.
func (s *Store) Count(trigger string) (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket([]byte(trigger)); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// Forget removes every ID recorded for trigger. Forgetting an unknown trigger is not an error.
func (s *Store) Forget(trigger string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(trigger))
		if err == bolt.ErrBucketNotFound {
			return nil
		}
		return err
	})
}
