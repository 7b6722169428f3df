package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTickSchedulerFiresOnce(t *testing.T) {
	s := NewTickScheduler()
	calls := 0
	s.Schedule(time.Second, func() { calls++ })
	require.Equal(t, 1, s.Pending())
	require.NotNil(t, s.Drain())
	require.Nil(t, s.Drain(), "ticks are handed out once")

	require.True(t, s.Fire(1))
	require.False(t, s.Fire(1))
	require.Equal(t, 1, calls)
	require.Zero(t, s.Pending())
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler()
	calls := 0
	task := s.Schedule(time.Second, func() { calls++ })
	require.True(t, task.Cancel())
	require.False(t, task.Cancel())
	require.False(t, s.Fire(1), "a cancelled tick is ignored when it arrives")
	require.Zero(t, calls)
}

func TestHelpPerPane(t *testing.T) {
	k := defaultKeyMap()
	for _, p := range []pane{paneFilters, paneResults, paneSearch} {
		require.NotEmpty(t, k.help(p))
	}
	require.Contains(t, k.Toggle.Keys(), " ")
}
