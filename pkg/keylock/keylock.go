// Package keylock provides mutual exclusion scoped by an arbitrary string key.
//
// Callers working on different keys never block each other. Entries are
// reference counted and dropped once the last holder or waiter leaves, so the
// number of live mutexes is bounded by the number of in-flight keys.
package keylock

import (
	"context"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyLock is a set of mutexes addressed by key. The zero value is not usable,
// construct it with New.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New creates an empty KeyLock
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock blocks until the mutex for key is held and returns the release func.
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Do runs fn while holding the mutex for key.
// A context that is already done is reported without acquiring the lock.
func (l *KeyLock) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock := l.Lock(key)
	defer unlock()

	return fn(ctx)
}

// Len returns the number of keys currently held or awaited.
func (l *KeyLock) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
