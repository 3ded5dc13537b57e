package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger("input", func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 10*time.Millisecond, "only the last trigger within the quiet window fires")

	// The window stays quiet afterwards.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := debounce.New(10 * time.Millisecond)
	defer d.Stop()

	var a, b atomic.Int32
	d.Trigger("a", func() { a.Add(1) })
	d.Trigger("b", func() { b.Add(1) })

	assert.Eventually(t, func() bool {
		return a.Load() == 1 && b.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncerCancel(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	d.Trigger("input", func() { calls.Add(1) })
	assert.True(t, d.Pending("input"))
	assert.True(t, d.Cancel("input"))
	assert.False(t, d.Pending("input"))
	assert.False(t, d.Cancel("input"), "second cancel finds nothing")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncerStop(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger("a", func() { calls.Add(1) })
	d.Trigger("b", func() { calls.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Still usable after Stop.
	d.Trigger("a", func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	d.Stop()
}

func TestAfter(t *testing.T) {
	t.Run("fires once", func(t *testing.T) {
		var calls atomic.Int32
		debounce.After(10*time.Millisecond, func() { calls.Add(1) })
		assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("stop prevents firing", func(t *testing.T) {
		var calls atomic.Int32
		timer := debounce.After(30*time.Millisecond, func() { calls.Add(1) })
		assert.True(t, timer.Stop())
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
		assert.False(t, timer.Stop(), "stopping twice reports false")
	})

	t.Run("nil handle is safe", func(t *testing.T) {
		var timer *debounce.Timer
		assert.False(t, timer.Stop())
	})
}
