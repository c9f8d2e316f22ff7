package locking

import "context"

// Lease is a held lock.
type Lease interface {
	// Refresh restarts the lock's expiry. It fails with apperrors.ErrConflict when the lock
	// has already expired, in which case another holder may be writing.
	Refresh(ctx context.Context) error
	// Unlock releases the lock. Calls after the first are no-ops.
	Unlock()
}

// Locker serialises work on a key across goroutines (local) or processes (redis).
type Locker interface {
	// Lock blocks until the key is held or ctx is done.
	Lock(ctx context.Context, key string) (Lease, error)
}

// BalanceKey is the lock key guarding one employee's balance record.
func BalanceKey(employeeID string) string {
	return "pto-balance:" + employeeID
}
