package ratelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimit_CountExceeded(t *testing.T) {
	l := Count(3)

	require.False(t, l.exceeded(2, 0))
	require.True(t, l.exceeded(3, 0))
	require.True(t, l.exceeded(4, time.Hour))
}

func TestLimit_WindowExceededIsStrict(t *testing.T) {
	l := Window(time.Second)

	require.False(t, l.exceeded(100, time.Second))
	require.True(t, l.exceeded(1, time.Second+time.Nanosecond))
}

func TestLimit_ZeroWindow(t *testing.T) {
	l := Window(0)

	require.False(t, l.exceeded(1, 0))
	require.True(t, l.exceeded(1, time.Nanosecond))
}
