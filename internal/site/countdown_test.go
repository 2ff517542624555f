package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountdownUntil_SplitsRemainder(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(90061 * time.Second)

	c := CountdownUntil(target, now)
	require.Equal(t, "01", c.Days)
	require.Equal(t, "01", c.Hours)
	require.Equal(t, "01", c.Minutes)
	require.Equal(t, "01", c.Seconds)
	require.False(t, c.Expired())
}

func TestCountdownUntil_ClampsAtTarget(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, target := range []time.Time{now, now.Add(-time.Hour)} {
		c := CountdownUntil(target, now)
		require.Equal(t, "00", c.Days)
		require.Equal(t, "00", c.Hours)
		require.Equal(t, "00", c.Minutes)
		require.Equal(t, "00", c.Seconds)
		require.True(t, c.Expired())
	}
}

func TestCountdownUntil_PadsLargeFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(12*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second)

	c := CountdownUntil(target, now)
	require.Equal(t, "12", c.Days)
	require.Equal(t, "23", c.Hours)
	require.Equal(t, "59", c.Minutes)
	require.Equal(t, "59", c.Seconds)
}
