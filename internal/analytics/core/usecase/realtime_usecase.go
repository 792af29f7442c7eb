package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

// Rolling windows, fixed relative to request time.
const (
	activeWindow = 5 * time.Minute
	recentWindow = 30 * time.Minute
)

const (
	topActivePageLimit = 10
	liveFeedLimit      = 50
)

// GetRealtimeUseCase answers "who is on the site right now": active
// visitors and currently viewed pages over the 5-minute window, plus a
// live feed of the last 30 minutes. Every call recomputes against the
// clock; results must never be cached.
type GetRealtimeUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetRealtimeUseCase(store ports.EventStorePort) *GetRealtimeUseCase {
	return &GetRealtimeUseCase{store: store, now: time.Now}
}

func (uc *GetRealtimeUseCase) Execute(ctx context.Context) (*domain.RealtimeSnapshot, error) {
	now := uc.now()
	tr := ports.TimeRange{Since: now.Add(-recentWindow), Until: now}

	var (
		views  []domain.PageView
		events []domain.Conversion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = uc.store.QueryPageViews(gctx, tr)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = uc.store.QueryConversionEvents(gctx, tr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reduceRealtime(now, views, events), nil
}

func reduceRealtime(now time.Time, views []domain.PageView, events []domain.Conversion) *domain.RealtimeSnapshot {
	// The active subset is derived in memory from the single 30-minute
	// query rather than issuing a second one.
	activeSince := now.Add(-activeWindow)

	visitors := make(map[string]struct{})
	activePages := newCounter()
	for _, v := range views {
		if v.CreatedAt.Before(activeSince) {
			continue
		}
		if v.VisitorID != "" {
			visitors[v.VisitorID] = struct{}{}
		}
		activePages.add(v.PagePath)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	feed := views
	if len(feed) > liveFeedLimit {
		feed = feed[:liveFeedLimit]
	}
	recent := events
	if len(recent) > liveFeedLimit {
		recent = recent[:liveFeedLimit]
	}

	return &domain.RealtimeSnapshot{
		ActiveVisitors: len(visitors),
		TopPages:       activePages.top(topActivePageLimit),
		RecentEvents:   recent,
		LiveFeed:       feed,
	}
}
