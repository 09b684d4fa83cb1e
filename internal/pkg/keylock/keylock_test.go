package keylock

import (
	"sync"
	"testing"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	kl := New()
	const workers = 64

	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			kl.Lock("alice|2024-01-01")
			counter++
			kl.Unlock("alice|2024-01-01")
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestKeyLockIndependentKeys(t *testing.T) {
	kl := New()

	kl.Lock("alice|2024-01-01")
	done := make(chan struct{})
	go func() {
		// Must not block on a different key.
		kl.Lock("bob|2024-01-01")
		kl.Unlock("bob|2024-01-01")
		close(done)
	}()
	<-done
	kl.Unlock("alice|2024-01-01")
}

func TestKeyLockDropsReleasedEntries(t *testing.T) {
	kl := New()
	kl.Lock("a")
	kl.Unlock("a")
	kl.Lock("b")
	kl.Unlock("b")

	kl.mu.Lock()
	n := len(kl.entries)
	kl.mu.Unlock()
	if n != 0 {
		t.Errorf("entries remaining = %d, want 0", n)
	}
}
