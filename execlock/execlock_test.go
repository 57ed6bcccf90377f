package execlock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbridge/lockcheck/execlock"
)

func Test_Lock_AcquireRelease(t *testing.T) {
	lock := execlock.New()

	require.NoError(t, lock.Acquire(context.Background()))
	assert.True(t, lock.Held())

	lock.Release()
	assert.False(t, lock.Held())
}

func Test_Lock_AcquireHonorsContext(t *testing.T) {
	lock := execlock.New()
	require.NoError(t, lock.Acquire(context.Background()))
	defer lock.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := lock.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_Lock_ReleaseUnheldPanics(t *testing.T) {
	lock := execlock.New()

	assert.PanicsWithValue(t, "execlock: release of unheld lock", func() {
		lock.Release()
	})
}

func Test_Lock_RunHoldsForCallbackDuration(t *testing.T) {
	lock := execlock.New()

	var heldInside bool
	err := lock.Run(context.Background(), func() {
		heldInside = lock.Held()
	})

	require.NoError(t, err)
	assert.True(t, heldInside)
	assert.False(t, lock.Held())
}

func Test_Lock_RunReturnsContextError(t *testing.T) {
	lock := execlock.New()
	require.NoError(t, lock.Acquire(context.Background()))
	defer lock.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := lock.Run(ctx, func() { ran = true })

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func Test_Lock_ExcludesConcurrentHolders(t *testing.T) {
	lock := execlock.New()
	require.NoError(t, lock.Acquire(context.Background()))

	acquired := make(chan struct{})
	go func() {
		_ = lock.Acquire(context.Background())
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second goroutine acquired a held lock")
	case <-time.After(50 * time.Millisecond):
	}

	lock.Release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second goroutine never acquired the released lock")
	}
	lock.Release()
}
