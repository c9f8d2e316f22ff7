package locking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL        = 10 * time.Second
	defaultLockTries      = 64
	defaultLockRetryDelay = 50 * time.Millisecond
	unlockTimeout         = 2 * time.Second
)

// RedisLocker is a distributed lock shared by every service instance pointing at one Redis.
type RedisLocker struct {
	rs         *redsync.Redsync
	ttl        time.Duration
	tries      int
	retryDelay time.Duration
	logger     *slog.Logger
}

// RedisOption configures a RedisLocker.
type RedisOption func(*RedisLocker)

// WithTTL sets how long a lock lives if its holder dies without releasing it.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *RedisLocker) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithRetry sets how many acquisition attempts are made and the delay between them.
func WithRetry(tries int, delay time.Duration) RedisOption {
	return func(r *RedisLocker) {
		if tries > 0 {
			r.tries = tries
		}
		if delay > 0 {
			r.retryDelay = delay
		}
	}
}

// WithLockLogger sets the logger used to report failed releases.
func WithLockLogger(logger *slog.Logger) RedisOption {
	return func(r *RedisLocker) {
		r.logger = logger
	}
}

// NewRedisLocker creates a distributed locker on top of a go-redis client.
func NewRedisLocker(client redis.UniversalClient, opts ...RedisOption) *RedisLocker {
	r := &RedisLocker{
		rs:         redsync.New(goredis.NewPool(client)),
		ttl:        defaultLockTTL,
		tries:      defaultLockTries,
		retryDelay: defaultLockRetryDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Locker = (*RedisLocker)(nil)

// Lock acquires the key, retrying until the configured attempts run out. Failing to get the
// lock is reported as a conflict so callers can retry the whole operation.
func (r *RedisLocker) Lock(ctx context.Context, key string) (Lease, error) {
	mutex := r.rs.NewMutex(key,
		redsync.WithExpiry(r.ttl),
		redsync.WithTries(r.tries),
		redsync.WithRetryDelay(r.retryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		}
		return nil, fmt.Errorf("%w: could not acquire lock %s: %v", apperrors.ErrConflict, key, err)
	}
	return &redisLease{mutex: mutex, key: key, logger: r.logger}, nil
}

// redisLease holds a redsync mutex until Unlock or until its TTL runs out.
type redisLease struct {
	mutex  *redsync.Mutex
	key    string
	logger *slog.Logger
	once   sync.Once
}

// Refresh extends the mutex by a full TTL. Extending fails once the key expired or was
// taken by another holder.
func (l *redisLease) Refresh(ctx context.Context) error {
	ok, err := l.mutex.ExtendContext(ctx)
	if err != nil || !ok {
		if ctx.Err() != nil {
			return fmt.Errorf("refreshing lock %s: %w", l.key, ctx.Err())
		}
		return fmt.Errorf("%w: lock %s expired before the write: %v", apperrors.ErrConflict, l.key, err)
	}
	return nil
}

func (l *redisLease) Unlock() {
	l.once.Do(func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		if ok, err := l.mutex.UnlockContext(unlockCtx); !ok || err != nil {
			// the TTL still frees the key eventually
			l.logger.Error("Failed to release lock",
				slog.String("lock_key", l.key),
				slog.Bool("unlock_ok", ok),
				slog.Any("error", err))
		}
	})
}
