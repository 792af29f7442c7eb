package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

const topKeywordLimit = 20

type GetChannelsInput struct {
	Days int
}

// GetChannelsUseCase attributes traffic to acquisition channels: referrer
// type distribution, search keyword ranking and UTM campaign grouping.
type GetChannelsUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetChannelsUseCase(store ports.EventStorePort) *GetChannelsUseCase {
	return &GetChannelsUseCase{store: store, now: time.Now}
}

func (uc *GetChannelsUseCase) Execute(ctx context.Context, in GetChannelsInput) (*domain.ChannelReport, error) {
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

	return reduceChannels(views, sessions), nil
}

type campaignKey struct {
	source   string
	medium   string
	campaign string
}

func reduceChannels(views []domain.PageView, sessions []domain.Session) *domain.ChannelReport {
	channels := newCounter()
	keywords := newCounter()
	for _, v := range views {
		channels.addOrDefault(v.ReferrerType, domain.ReferrerDirect)
		keywords.add(v.SearchKeyword)
	}

	// Campaigns group on the composite (source, medium, campaign) key;
	// only sessions that carried a utm_source count.
	campaignCounts := make(map[campaignKey]int)
	for _, s := range sessions {
		if s.UTMSource == "" {
			continue
		}
		campaignCounts[campaignKey{s.UTMSource, s.UTMMedium, s.UTMCampaign}]++
	}

	campaigns := make([]domain.CampaignCount, 0, len(campaignCounts))
	for k, n := range campaignCounts {
		campaigns = append(campaigns, domain.CampaignCount{
			Source:   k.source,
			Medium:   k.medium,
			Campaign: k.campaign,
			Count:    n,
		})
	}
	sort.Slice(campaigns, func(i, j int) bool {
		if campaigns[i].Count != campaigns[j].Count {
			return campaigns[i].Count > campaigns[j].Count
		}
		if campaigns[i].Source != campaigns[j].Source {
			return campaigns[i].Source < campaigns[j].Source
		}
		if campaigns[i].Medium != campaigns[j].Medium {
			return campaigns[i].Medium < campaigns[j].Medium
		}
		return campaigns[i].Campaign < campaigns[j].Campaign
	})

	return &domain.ChannelReport{
		Channels:    channels.pairs(),
		TopKeywords: keywords.top(topKeywordLimit),
		Campaigns:   campaigns,
	}
}
