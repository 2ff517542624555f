package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

//go:embed templates/*.html
var templateFS embed.FS

const homeNewsLimit = 3

// Facade is the slice of the API client the renderer consumes.
type Facade interface {
	GetNews(ctx context.Context, limit int) ([]webclient.NewsItem, error)
	GetResults(ctx context.Context, opts webclient.ListOptions) ([]webclient.Result, error)
	GetFixtures(ctx context.Context, opts webclient.ListOptions) ([]webclient.Fixture, error)
	GetLiveMatch(ctx context.Context) (*webclient.LiveMatch, error)
	GetSponsors(ctx context.Context) ([]webclient.Sponsor, error)
	SubscribeNewsletter(ctx context.Context, email string) (string, error)
}

// Renderer assembles and renders the public pages.
type Renderer struct {
	facade    Facade
	poller    *LivePoller
	logger    *logging.Logger
	templates *template.Template
	now       func() time.Time
}

func NewRenderer(facade Facade, poller *LivePoller, logger *logging.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse site templates: %w", err)
	}

	return &Renderer{
		facade:    facade,
		poller:    poller,
		logger:    logger,
		templates: templates,
		now:       time.Now,
	}, nil
}

// BuildHomeView fetches every home-page section in parallel. A failed
// section sets its failure flag and renders its retry message; the
// page itself always renders.
func (r *Renderer) BuildHomeView(ctx context.Context, competition string) HomeView {
	now := r.now()
	view := HomeView{Year: now.Year()}

	var (
		news     []webclient.NewsItem
		newsErr  error
		results  []webclient.Result
		fixtures []webclient.Fixture
		resErr   error
		fixErr   error
		sponsors []webclient.Sponsor
		sponErr  error
	)

	opts := webclient.ListOptions{Competition: competition}

	var wg conc.WaitGroup
	wg.Go(func() {
		news, newsErr = r.facade.GetNews(ctx, homeNewsLimit)
	})
	wg.Go(func() {
		results, resErr = r.facade.GetResults(ctx, opts)
	})
	wg.Go(func() {
		fixtures, fixErr = r.facade.GetFixtures(ctx, opts)
	})
	wg.Go(func() {
		sponsors, sponErr = r.facade.GetSponsors(ctx)
	})
	wg.Wait()

	if newsErr != nil {
		r.logger.WarnContext(ctx, "home news section failed", "error", newsErr)
		view.NewsFailed = true
	} else {
		for _, item := range news {
			view.News = append(view.News, newsCardFrom(item))
		}
	}

	if resErr != nil || fixErr != nil {
		r.logger.WarnContext(ctx, "home matches section failed", "results_error", resErr, "fixtures_error", fixErr)
		view.MatchesFailed = true
	} else {
		for _, item := range results {
			view.Results = append(view.Results, resultCardFrom(item))
		}
		for _, item := range fixtures {
			view.Fixtures = append(view.Fixtures, fixtureCardFrom(item))
		}
		view.Next = nextMatchFrom(fixtures, now)
	}

	if sponErr != nil {
		r.logger.WarnContext(ctx, "home sponsors section failed", "error", sponErr)
		view.SponsorsFailed = true
	} else {
		for _, item := range sponsors {
			view.Sponsors = append(view.Sponsors, sponsorCardFrom(item))
		}
	}

	if r.poller != nil {
		if live := r.poller.Snapshot(); live.Visible {
			view.Live = &live
		}
	}

	return view
}

// RenderHome writes the assembled home page.
func (r *Renderer) RenderHome(w io.Writer, view HomeView) error {
	if err := r.templates.ExecuteTemplate(w, "home.html", view); err != nil {
		return fmt.Errorf("render home page: %w", err)
	}
	return nil
}
