package lock

import (
	"context"
	"sync"
)

// Locker hands out non-blocking per-key locks. TryLock reports false when
// the key is already held; the returned release function is idempotent.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// LocalLocker guards keys within one process
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

func (l *LocalLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[key]; busy {
		return func() {}, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}
