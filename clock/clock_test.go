package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystem_NonDecreasing(t *testing.T) {
	c := System()

	first := c.Now()
	second := c.Now()

	require.False(t, second.Before(first))
}

func TestManual_SetAndAdvance(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewManual(start)

	require.Equal(t, start, m.Now())

	m.Advance(250 * time.Millisecond)
	require.Equal(t, start.Add(250*time.Millisecond), m.Now())

	// Backwards movement is allowed for non-monotonic test scenarios.
	m.Advance(-time.Second)
	require.Equal(t, start.Add(250*time.Millisecond-time.Second), m.Now())

	m.Set(start)
	require.Equal(t, start, m.Now())
}
