package lock

import (
	"context"
	"sync"
)

// KeyedMutex is the single-instance Locker: one mutex per key, created on
// demand and dropped when the last holder releases.
type KeyedMutex struct {
	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{} // capacity 1, holding a token means holding the lock
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{keys: make(map[string]*keyLock)}
}

func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	kl, ok := m.keys[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		m.keys[key] = kl
	}
	kl.refs++
	m.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		return func() {
			<-kl.ch
			m.unref(key, kl)
		}, nil
	case <-ctx.Done():
		m.unref(key, kl)
		return nil, ctx.Err()
	}
}

func (m *KeyedMutex) unref(key string, kl *keyLock) {
	m.mu.Lock()
	kl.refs--
	if kl.refs == 0 {
		delete(m.keys, key)
	}
	m.mu.Unlock()
}

var _ Locker = (*KeyedMutex)(nil)
