package locking

import (
	"context"
	"fmt"
	"sync"
)

type keyLock struct {
	sem     chan struct{}
	waiters int
}

// LocalLocker is an in-process keyed mutex. Entries are dropped once nobody holds or waits
// for a key, so the map stays bounded by the number of keys in use.
type LocalLocker struct {
	mu    sync.Mutex // protects locks
	locks map[string]*keyLock
}

// NewLocalLocker creates an empty keyed mutex.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

var _ Locker = (*LocalLocker)(nil)

func (l *LocalLocker) acquireEntry(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.waiters++
	return kl
}

func (l *LocalLocker) releaseEntry(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.waiters--
	if kl.waiters == 0 {
		delete(l.locks, key)
	}
}

// Lock takes the key's mutex, giving up when ctx is cancelled.
func (l *LocalLocker) Lock(ctx context.Context, key string) (Lease, error) {
	kl := l.acquireEntry(key)
	select {
	case kl.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(key, kl)
		return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
	}
	return &localLease{owner: l, key: key, kl: kl}, nil
}

// localLease never expires; it is held until Unlock.
type localLease struct {
	owner *LocalLocker
	key   string
	kl    *keyLock
	once  sync.Once
}

func (l *localLease) Refresh(ctx context.Context) error {
	return ctx.Err()
}

func (l *localLease) Unlock() {
	l.once.Do(func() {
		<-l.kl.sem
		l.owner.releaseEntry(l.key, l.kl)
	})
}
