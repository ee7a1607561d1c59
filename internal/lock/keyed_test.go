package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	m := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), "booking:1:1")
			if err != nil {
				t.Error(err)
				return
			}
			defer release()

			// Unsynchronized on purpose; the lock is the only protection.
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	m := NewKeyedMutex()

	release1, err := m.Acquire(context.Background(), "booking:1:1")
	require.NoError(t, err)
	defer release1()

	// A different professional's key must not block.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	release2, err := m.Acquire(ctx, "booking:1:2")
	require.NoError(t, err)
	release2()
}

func TestKeyedMutex_AcquireHonoursContext(t *testing.T) {
	m := NewKeyedMutex()

	release, err := m.Acquire(context.Background(), "booking:1:1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = m.Acquire(ctx, "booking:1:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedMutex_ReleasedKeyCanBeReacquired(t *testing.T) {
	m := NewKeyedMutex()

	release, err := m.Acquire(context.Background(), "booking:1:1")
	require.NoError(t, err)
	release()

	release, err = m.Acquire(context.Background(), "booking:1:1")
	require.NoError(t, err)
	release()

	// No holders left: the key map must not leak entries.
	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.keys)
}

func TestProfessionalKey(t *testing.T) {
	assert.Equal(t, "booking:1:2", ProfessionalKey(1, 2))
	assert.NotEqual(t, ProfessionalKey(1, 2), ProfessionalKey(2, 1))
}
