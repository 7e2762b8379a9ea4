package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("phone:+79161234567")
			defer km.Unlock("phone:+79161234567")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutexDifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	km.Lock("a")
	defer km.Unlock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different keys must not contend")
	}
}

func TestKeyedMutexEntriesReclaimed(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	km.Lock("a")
	km.Unlock("a")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
