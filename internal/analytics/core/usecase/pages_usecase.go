package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

const topLandingExitLimit = 20

type GetPagesInput struct {
	Days int
}

// GetPagesUseCase computes per-page engagement stats plus landing and
// exit page rankings.
type GetPagesUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetPagesUseCase(store ports.EventStorePort) *GetPagesUseCase {
	return &GetPagesUseCase{store: store, now: time.Now}
}

func (uc *GetPagesUseCase) Execute(ctx context.Context, in GetPagesInput) (*domain.PageReport, error) {
	window := domain.NewTimeWindow(uc.now(), in.Days)
	tr := ports.TimeRange{Since: window.Since, Until: window.Until}

	var (
		views    []domain.PageView
		sessions []domain.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = uc.store.QueryPageViews(gctx, tr)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = uc.store.QuerySessions(gctx, tr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reducePages(views, sessions), nil
}

type pageAccum struct {
	title     string
	views     int
	timeSum   int
	scrollSum int
	bounces   int
}

func reducePages(views []domain.PageView, sessions []domain.Session) *domain.PageReport {
	accums := make(map[string]*pageAccum)
	for _, v := range views {
		if v.PagePath == "" {
			continue
		}
		a, ok := accums[v.PagePath]
		if !ok {
			a = &pageAccum{}
			accums[v.PagePath] = a
		}
		if a.title == "" && v.PageTitle != "" {
			a.title = v.PageTitle
		}
		a.views++
		a.timeSum += v.TimeOnPage
		a.scrollSum += v.ScrollDepth
		if v.IsBounce {
			a.bounces++
		}
	}

	popular := make([]domain.PageStat, 0, len(accums))
	for path, a := range accums {
		title := a.title
		if title == "" {
			title = path
		}
		popular = append(popular, domain.PageStat{
			Path:       path,
			Title:      title,
			Views:      a.views,
			AvgTime:    avgInt(a.timeSum, a.views),
			AvgScroll:  avgInt(a.scrollSum, a.views),
			BounceRate: percent(a.bounces, a.views),
		})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Views != popular[j].Views {
			return popular[i].Views > popular[j].Views
		}
		return popular[i].Path < popular[j].Path
	})

	landing := newCounter()
	exits := newCounter()
	for _, s := range sessions {
		landing.add(s.LandingPage)
		exits.add(s.ExitPage)
	}

	return &domain.PageReport{
		PopularPages: popular,
		LandingPages: landing.top(topLandingExitLimit),
		ExitPages:    exits.top(topLandingExitLimit),
	}
}
