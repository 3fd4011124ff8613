package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerialisesAccess(t *testing.T) {
	km := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("a")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockDeduplicatesKeys(t *testing.T) {
	km := NewKeyedMutex()

	// Locking the same key twice in one call must not self-deadlock
	unlock := km.Lock("a", "a")
	unlock()

	unlock = km.Lock("a")
	unlock()
}

func TestOverlappingKeySetsDoNotDeadlock(t *testing.T) {
	km := NewKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := km.Lock("a", "b")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := km.Lock("b", "a")
			unlock()
		}()
	}
	wg.Wait()
}
