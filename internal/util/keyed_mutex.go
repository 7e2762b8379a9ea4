// Package util holds small shared helpers with no domain knowledge.
package util

import "sync"

// KeyedMutex serializes work per key while leaving different keys fully
// parallel. Entries are reference counted and removed once idle, so the
// map does not grow with the total number of keys ever seen.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*keyedLock),
	}
}

// Lock acquires the mutex for key, blocking while another holder owns it.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &keyedLock{}
		k.locks[key] = lock
	}
	lock.refs++
	k.mu.Unlock()

	lock.mu.Lock()
}

// Unlock releases the mutex for key. Unlocking a key that is not held panics,
// same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("util: unlock of unheld keyed mutex: " + key)
	}
	lock.refs--
	if lock.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	lock.mu.Unlock()
}
