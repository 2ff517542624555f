package site

import (
	"context"
	"sync"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

// LiveView is the live-match banner state shared between the poller
// and the page renderer.
type LiveView struct {
	Competition string
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	Minute      int
	Visible     bool
}

type liveFetcher func(ctx context.Context) (*webclient.LiveMatch, error)

// LivePoller refreshes the live banner on a fixed interval. Refreshes
// only touch the mutable fields (scores, minute); team names are set
// once when a match first appears.
type LivePoller struct {
	fetch    liveFetcher
	interval time.Duration
	logger   *logging.Logger

	mu   sync.RWMutex
	view LiveView
}

func NewLivePoller(fetch liveFetcher, interval time.Duration, logger *logging.Logger) *LivePoller {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &LivePoller{fetch: fetch, interval: interval, logger: logger}
}

// Run polls until ctx is cancelled. The first fetch happens
// immediately so the banner is correct on startup.
func (p *LivePoller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *LivePoller) refresh(ctx context.Context) {
	live, err := p.fetch(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "live match refresh failed", "error", err)
		return
	}
	p.apply(live)
}

func (p *LivePoller) apply(live *webclient.LiveMatch) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if live == nil {
		p.view.Visible = false
		return
	}

	if !p.view.Visible {
		p.view.Competition = live.Competition
		p.view.HomeTeam = live.HomeTeam
		p.view.AwayTeam = live.AwayTeam
	}
	p.view.HomeScore = live.HomeScore
	p.view.AwayScore = live.AwayScore
	p.view.Minute = live.Minute
	p.view.Visible = true
}

// Snapshot returns a copy of the current banner state.
func (p *LivePoller) Snapshot() LiveView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}
