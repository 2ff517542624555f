package site

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

func TestLivePoller_UpdatesOnlyMutableFields(t *testing.T) {
	poller := NewLivePoller(nil, time.Minute, logging.NewNop())

	poller.apply(&webclient.LiveMatch{
		Competition: "Liga Pro",
		HomeTeam:    "CD Quito",
		AwayTeam:    "Barcelona SC",
		HomeScore:   0,
		AwayScore:   0,
		Minute:      12,
	})

	// A refresh with different team names must not rename the banner.
	poller.apply(&webclient.LiveMatch{
		HomeTeam:  "Otro Equipo",
		AwayTeam:  "Otro Rival",
		HomeScore: 1,
		AwayScore: 0,
		Minute:    27,
	})

	view := poller.Snapshot()
	require.True(t, view.Visible)
	require.Equal(t, "CD Quito", view.HomeTeam)
	require.Equal(t, "Barcelona SC", view.AwayTeam)
	require.Equal(t, 1, view.HomeScore)
	require.Equal(t, 0, view.AwayScore)
	require.Equal(t, 27, view.Minute)
}

func TestLivePoller_HidesWhenMatchEnds(t *testing.T) {
	poller := NewLivePoller(nil, time.Minute, logging.NewNop())

	poller.apply(&webclient.LiveMatch{HomeTeam: "CD Quito", AwayTeam: "Aucas", Minute: 90})
	poller.apply(nil)

	require.False(t, poller.Snapshot().Visible)
}

func TestLivePoller_KeepsLastViewOnFetchError(t *testing.T) {
	calls := int32(0)
	fetch := func(ctx context.Context) (*webclient.LiveMatch, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return &webclient.LiveMatch{HomeTeam: "CD Quito", AwayTeam: "Emelec", Minute: 40}, nil
		}
		return nil, context.DeadlineExceeded
	}

	poller := NewLivePoller(fetch, time.Minute, logging.NewNop())
	poller.refresh(context.Background())
	poller.refresh(context.Background())

	view := poller.Snapshot()
	require.True(t, view.Visible)
	require.Equal(t, 40, view.Minute)
}

func TestLivePoller_StopsOnContextCancel(t *testing.T) {
	calls := int32(0)
	fetch := func(ctx context.Context) (*webclient.LiveMatch, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	poller := NewLivePoller(fetch, 5*time.Millisecond, logging.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
	require.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}
