package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterRunsOnce(t *testing.T) {
	s := New()
	calls := 0
	s.After(2*time.Second, func() { calls++ })

	assert.Equal(t, 0, s.Advance(time.Second))
	assert.Equal(t, 0, calls)

	assert.Equal(t, 1, s.Advance(time.Second))
	assert.Equal(t, 1, calls)

	s.Advance(10 * time.Second)
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Len())
	assert.Equal(t, 12*time.Second, s.Now())
}

func TestEveryReschedulesFromDueTime(t *testing.T) {
	s := New()
	var at []time.Duration
	s.Every(300*time.Millisecond, func() { at = append(at, s.Now()) })

	s.Advance(250 * time.Millisecond)
	s.Advance(500 * time.Millisecond)
	s.Advance(250 * time.Millisecond)

	assert.Equal(t, []time.Duration{
		300 * time.Millisecond,
		600 * time.Millisecond,
		900 * time.Millisecond,
	}, at)
	assert.Equal(t, 1, s.Len())
}

func TestDueOrderAndTies(t *testing.T) {
	s := New()
	var order []string
	s.After(2*time.Second, func() { order = append(order, "late") })
	s.After(time.Second, func() { order = append(order, "first") })
	s.After(time.Second, func() { order = append(order, "second") })

	require.Equal(t, 3, s.Advance(5*time.Second))
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestCancel(t *testing.T) {
	s := New()
	calls := 0
	id := s.Every(time.Second, func() { calls++ })
	other := s.After(time.Second, func() {})

	s.Advance(time.Second)
	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	assert.False(t, s.Cancel(other), "one-shot already ran")
	assert.False(t, s.Cancel(0))

	s.Advance(5 * time.Second)
	assert.Equal(t, 1, calls)
}

func TestCallbackCancelsItself(t *testing.T) {
	s := New()
	calls := 0
	var id TaskID
	id = s.Every(time.Second, func() {
		calls++
		if calls == 3 {
			s.Cancel(id)
		}
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 3, calls)
	assert.Zero(t, s.Len())
}

func TestCallbackSchedules(t *testing.T) {
	s := New()
	var order []string
	s.After(time.Second, func() {
		order = append(order, "outer")
		s.After(0, func() { order = append(order, "inner") })
	})

	s.Advance(time.Second)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestNonPositiveInterval(t *testing.T) {
	s := New()
	calls := 0
	s.Every(0, func() { calls++ })

	s.Advance(0)
	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
}
