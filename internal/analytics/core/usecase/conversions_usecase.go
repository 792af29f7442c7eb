package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

const topConversionPathLimit = 10

// funnelStages is the fixed consultation funnel, in display order. Stage
// counts are independent raw counts, not a retained cohort.
var funnelStages = []string{
	domain.EventFormOpen,
	domain.EventFormSubmit,
	domain.EventKakaoClick,
	domain.EventPhoneClick,
}

// conversionIntentTypes are the event types that signal likely business
// conversion: a submitted form, a KakaoTalk click or a phone click.
var conversionIntentTypes = map[string]struct{}{
	domain.EventFormSubmit: {},
	domain.EventKakaoClick: {},
	domain.EventPhoneClick: {},
}

type GetConversionsInput struct {
	Days int
}

// GetConversionsUseCase computes the consultation funnel, per-channel
// conversion rates, top conversion paths and the blog contribution proxy.
type GetConversionsUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetConversionsUseCase(store ports.EventStorePort) *GetConversionsUseCase {
	return &GetConversionsUseCase{store: store, now: time.Now}
}

func (uc *GetConversionsUseCase) Execute(ctx context.Context, in GetConversionsInput) (*domain.ConversionReport, error) {
	window := domain.NewTimeWindow(uc.now(), in.Days)
	tr := ports.TimeRange{Since: window.Since, Until: window.Until}

	var (
		events   []domain.Conversion
		sessions []domain.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = uc.store.QueryConversionEvents(gctx, tr)
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

	return reduceConversions(events, len(sessions)), nil
}

func reduceConversions(events []domain.Conversion, totalSessions int) *domain.ConversionReport {
	types := newCounter()
	paths := newCounter()
	channelTotals := newCounter()
	channelIntent := make(map[string]int)
	blogPaths := make(map[string]struct{})
	intentCount := 0

	for _, e := range events {
		types.add(e.EventType)
		channelTotals.addOrDefault(e.ReferrerType, domain.ReferrerDirect)

		_, isIntent := conversionIntentTypes[e.EventType]
		if isIntent {
			intentCount++
			paths.add(e.PagePath)
			channel := e.ReferrerType
			if channel == "" {
				channel = domain.ReferrerDirect
			}
			channelIntent[channel]++
		}

		if e.EventType == domain.EventBlogRead && e.PagePath != "" {
			blogPaths[e.PagePath] = struct{}{}
		}
	}

	funnel := make([]domain.KeyCount, 0, len(funnelStages))
	for _, stage := range funnelStages {
		funnel = append(funnel, domain.KeyCount{Key: stage, Count: types.count(stage)})
	}

	performance := make([]domain.ChannelPerformance, 0, len(channelTotals.counts))
	for _, ch := range channelTotals.pairs() {
		performance = append(performance, domain.ChannelPerformance{
			Channel:     ch.Key,
			Sessions:    ch.Count,
			Conversions: channelIntent[ch.Key],
			Rate:        percent(channelIntent[ch.Key], ch.Count),
		})
	}

	return &domain.ConversionReport{
		Funnel:                funnel,
		EventCounts:           types.pairs(),
		ConversionPaths:       paths.top(topConversionPathLimit),
		ChannelPerformance:    performance,
		BlogContribution:      len(blogPaths),
		OverallConversionRate: percent1(intentCount, totalSessions),
		TotalSessions:         totalSessions,
	}
}
