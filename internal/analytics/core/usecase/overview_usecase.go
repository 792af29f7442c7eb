package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

type GetOverviewInput struct {
	Days int
}

// GetOverviewUseCase computes the window-wide traffic summary: totals,
// rates, the pre-seeded daily chart and the hourly heatmap.
type GetOverviewUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetOverviewUseCase(store ports.EventStorePort) *GetOverviewUseCase {
	return &GetOverviewUseCase{store: store, now: time.Now}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context, in GetOverviewInput) (*domain.OverviewReport, error) {
	window := domain.NewTimeWindow(uc.now(), in.Days)
	tr := ports.TimeRange{Since: window.Since, Until: window.Until}

	var (
		views       []domain.PageView
		sessions    []domain.Session
		conversions []domain.Conversion
	)

	// The three range queries are independent; fan out and join. A failure
	// on any of them cancels the siblings and fails the whole request.
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
	g.Go(func() error {
		var err error
		conversions, err = uc.store.QueryConversionEvents(gctx, tr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reduceOverview(window, views, sessions, conversions), nil
}

func reduceOverview(window domain.TimeWindow, views []domain.PageView, sessions []domain.Session, conversions []domain.Conversion) *domain.OverviewReport {
	days := window.Days()
	daily := make(map[string]int, len(days))
	for _, d := range days {
		daily[d] = 0
	}

	heatmap := make([]int, 24)
	for _, v := range views {
		day := v.CreatedAt.Format(domain.DateFormat)
		if _, ok := daily[day]; ok {
			daily[day]++
		}
		heatmap[v.CreatedAt.Hour()]++
	}

	chart := make([]domain.DailyCount, 0, len(days))
	for _, d := range days {
		chart = append(chart, domain.DailyCount{Date: d, Views: daily[d]})
	}

	visitors := make(map[string]struct{}, len(sessions))
	var bounced, newVisitors, totalDuration, totalPages int
	for _, s := range sessions {
		if s.VisitorID != "" {
			visitors[s.VisitorID] = struct{}{}
		}
		if s.IsBounce {
			bounced++
		}
		if s.IsNewVisitor {
			newVisitors++
		}
		totalDuration += s.TotalDuration
		totalPages += s.PageCount
	}

	return &domain.OverviewReport{
		TotalViews:     len(views),
		UniqueVisitors: len(visitors),
		TotalSessions:  len(sessions),
		BounceRate:     percent(bounced, len(sessions)),
		NewVisitors:    newVisitors,
		AvgDuration:    avgInt(totalDuration, len(sessions)),
		AvgPages:       avg1(totalPages, len(sessions)),
		TotalEvents:    len(conversions),
		DailyChart:     chart,
		HourlyHeatmap:  heatmap,
	}
}
