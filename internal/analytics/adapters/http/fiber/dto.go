package fiber

import (
	"time"

	"visitor-analytics-service/internal/analytics/core/domain"
)

type ErrorResponse struct {
	Error string `json:"error" example:"통계 데이터를 불러오지 못했습니다."`
}

// --- overview ---

type DailyPointResponse struct {
	Date  string `json:"date" example:"2026-08-01"`
	Views int    `json:"views"`
}

type OverviewResponse struct {
	TotalViews     int                  `json:"totalViews"`
	UniqueVisitors int                  `json:"uniqueVisitors"`
	TotalSessions  int                  `json:"totalSessions"`
	BounceRate     int                  `json:"bounceRate"`
	NewVisitors    int                  `json:"newVisitors"`
	AvgDuration    int                  `json:"avgDuration"`
	AvgPages       float64              `json:"avgPages"`
	TotalEvents    int                  `json:"totalEvents"`
	DailyChart     []DailyPointResponse `json:"dailyChart"`
	HourlyHeatmap  []int                `json:"hourlyHeatmap"`
}

func newOverviewResponse(r *domain.OverviewReport) OverviewResponse {
	chart := make([]DailyPointResponse, 0, len(r.DailyChart))
	for _, d := range r.DailyChart {
		chart = append(chart, DailyPointResponse{Date: d.Date, Views: d.Views})
	}
	heatmap := make([]int, len(r.HourlyHeatmap))
	copy(heatmap, r.HourlyHeatmap)

	return OverviewResponse{
		TotalViews:     r.TotalViews,
		UniqueVisitors: r.UniqueVisitors,
		TotalSessions:  r.TotalSessions,
		BounceRate:     r.BounceRate,
		NewVisitors:    r.NewVisitors,
		AvgDuration:    r.AvgDuration,
		AvgPages:       r.AvgPages,
		TotalEvents:    r.TotalEvents,
		DailyChart:     chart,
		HourlyHeatmap:  heatmap,
	}
}

// --- channels ---

type NameValueResponse struct {
	Name  string `json:"name" example:"search"`
	Value int    `json:"value"`
}

type KeywordCountResponse struct {
	Keyword string `json:"keyword" example:"이혼 전문 변호사"`
	Count   int    `json:"count"`
}

type CampaignResponse struct {
	Source   string `json:"source" example:"naver"`
	Medium   string `json:"medium" example:"cpc"`
	Campaign string `json:"campaign" example:"divorce_2026"`
	Count    int    `json:"count"`
}

type ChannelsResponse struct {
	Channels    []NameValueResponse    `json:"channels"`
	TopKeywords []KeywordCountResponse `json:"topKeywords"`
	Campaigns   []CampaignResponse     `json:"campaigns"`
}

func newChannelsResponse(r *domain.ChannelReport) ChannelsResponse {
	channels := make([]NameValueResponse, 0, len(r.Channels))
	for _, c := range r.Channels {
		channels = append(channels, NameValueResponse{Name: c.Key, Value: c.Count})
	}
	keywords := make([]KeywordCountResponse, 0, len(r.TopKeywords))
	for _, k := range r.TopKeywords {
		keywords = append(keywords, KeywordCountResponse{Keyword: k.Key, Count: k.Count})
	}
	campaigns := make([]CampaignResponse, 0, len(r.Campaigns))
	for _, c := range r.Campaigns {
		campaigns = append(campaigns, CampaignResponse{
			Source:   c.Source,
			Medium:   c.Medium,
			Campaign: c.Campaign,
			Count:    c.Count,
		})
	}
	return ChannelsResponse{Channels: channels, TopKeywords: keywords, Campaigns: campaigns}
}

// --- conversions ---

type TypeCountResponse struct {
	Type  string `json:"type" example:"form_submit"`
	Count int    `json:"count"`
}

type PathCountResponse struct {
	Path  string `json:"path" example:"/services/divorce"`
	Count int    `json:"count"`
}

type ChannelPerformanceResponse struct {
	Channel     string `json:"channel" example:"search"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
	Rate        int    `json:"rate"`
}

type ConversionsResponse struct {
	Funnel                []TypeCountResponse          `json:"funnel"`
	EventCounts           []TypeCountResponse          `json:"eventCounts"`
	ConversionPaths       []PathCountResponse          `json:"conversionPaths"`
	ChannelPerformance    []ChannelPerformanceResponse `json:"channelPerformance"`
	BlogContribution      int                          `json:"blogContribution"`
	OverallConversionRate float64                      `json:"overallConversionRate"`
	TotalSessions         int                          `json:"totalSessions"`
}

func newConversionsResponse(r *domain.ConversionReport) ConversionsResponse {
	funnel := make([]TypeCountResponse, 0, len(r.Funnel))
	for _, s := range r.Funnel {
		funnel = append(funnel, TypeCountResponse{Type: s.Key, Count: s.Count})
	}
	counts := make([]TypeCountResponse, 0, len(r.EventCounts))
	for _, s := range r.EventCounts {
		counts = append(counts, TypeCountResponse{Type: s.Key, Count: s.Count})
	}
	paths := make([]PathCountResponse, 0, len(r.ConversionPaths))
	for _, p := range r.ConversionPaths {
		paths = append(paths, PathCountResponse{Path: p.Key, Count: p.Count})
	}
	performance := make([]ChannelPerformanceResponse, 0, len(r.ChannelPerformance))
	for _, p := range r.ChannelPerformance {
		performance = append(performance, ChannelPerformanceResponse{
			Channel:     p.Channel,
			Sessions:    p.Sessions,
			Conversions: p.Conversions,
			Rate:        p.Rate,
		})
	}
	return ConversionsResponse{
		Funnel:                funnel,
		EventCounts:           counts,
		ConversionPaths:       paths,
		ChannelPerformance:    performance,
		BlogContribution:      r.BlogContribution,
		OverallConversionRate: r.OverallConversionRate,
		TotalSessions:         r.TotalSessions,
	}
}

// --- devices ---

type NameCountResponse struct {
	Name  string `json:"name" example:"mobile"`
	Count int    `json:"count"`
}

type DevicesResponse struct {
	DeviceTypes      []NameCountResponse `json:"deviceTypes"`
	Brands           []NameCountResponse `json:"brands"`
	Browsers         []NameCountResponse `json:"browsers"`
	OperatingSystems []NameCountResponse `json:"operatingSystems"`
	Resolutions      []NameCountResponse `json:"resolutions"`
}

func toNameCounts(pairs []domain.KeyCount) []NameCountResponse {
	out := make([]NameCountResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, NameCountResponse{Name: p.Key, Count: p.Count})
	}
	return out
}

func newDevicesResponse(r *domain.DeviceReport) DevicesResponse {
	return DevicesResponse{
		DeviceTypes:      toNameCounts(r.DeviceTypes),
		Brands:           toNameCounts(r.Brands),
		Browsers:         toNameCounts(r.Browsers),
		OperatingSystems: toNameCounts(r.OperatingSystems),
		Resolutions:      toNameCounts(r.Resolutions),
	}
}

// --- pages ---

type PageStatResponse struct {
	Path       string `json:"path" example:"/blog/divorce-guide"`
	Title      string `json:"title"`
	Views      int    `json:"views"`
	AvgTime    int    `json:"avgTime"`
	AvgScroll  int    `json:"avgScroll"`
	BounceRate int    `json:"bounceRate"`
}

type PagesResponse struct {
	PopularPages []PageStatResponse  `json:"popularPages"`
	LandingPages []PathCountResponse `json:"landingPages"`
	ExitPages    []PathCountResponse `json:"exitPages"`
}

func toPathCounts(pairs []domain.KeyCount) []PathCountResponse {
	out := make([]PathCountResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, PathCountResponse{Path: p.Key, Count: p.Count})
	}
	return out
}

func newPagesResponse(r *domain.PageReport) PagesResponse {
	popular := make([]PageStatResponse, 0, len(r.PopularPages))
	for _, p := range r.PopularPages {
		popular = append(popular, PageStatResponse{
			Path:       p.Path,
			Title:      p.Title,
			Views:      p.Views,
			AvgTime:    p.AvgTime,
			AvgScroll:  p.AvgScroll,
			BounceRate: p.BounceRate,
		})
	}
	return PagesResponse{
		PopularPages: popular,
		LandingPages: toPathCounts(r.LandingPages),
		ExitPages:    toPathCounts(r.ExitPages),
	}
}

// --- realtime ---

type RealtimeEventResponse struct {
	EventType    string    `json:"eventType" example:"phone_click"`
	EventLabel   string    `json:"eventLabel"`
	PagePath     string    `json:"pagePath"`
	ReferrerType string    `json:"referrerType"`
	DeviceType   string    `json:"deviceType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RealtimeViewResponse struct {
	VisitorID    string    `json:"visitorId"`
	PagePath     string    `json:"pagePath"`
	PageTitle    string    `json:"pageTitle"`
	ReferrerType string    `json:"referrerType"`
	DeviceType   string    `json:"deviceType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RealtimeResponse struct {
	ActiveVisitors int                     `json:"activeVisitors"`
	TopPages       []PathCountResponse     `json:"topPages"`
	RecentEvents   []RealtimeEventResponse `json:"recentEvents"`
	LiveFeed       []RealtimeViewResponse  `json:"liveFeed"`
}

func newRealtimeResponse(r *domain.RealtimeSnapshot) RealtimeResponse {
	events := make([]RealtimeEventResponse, 0, len(r.RecentEvents))
	for _, e := range r.RecentEvents {
		events = append(events, RealtimeEventResponse{
			EventType:    e.EventType,
			EventLabel:   e.EventLabel,
			PagePath:     e.PagePath,
			ReferrerType: e.ReferrerType,
			DeviceType:   e.DeviceType,
			CreatedAt:    e.CreatedAt,
		})
	}
	feed := make([]RealtimeViewResponse, 0, len(r.LiveFeed))
	for _, v := range r.LiveFeed {
		feed = append(feed, RealtimeViewResponse{
			VisitorID:    v.VisitorID,
			PagePath:     v.PagePath,
			PageTitle:    v.PageTitle,
			ReferrerType: v.ReferrerType,
			DeviceType:   v.DeviceType,
			CreatedAt:    v.CreatedAt,
		})
	}
	return RealtimeResponse{
		ActiveVisitors: r.ActiveVisitors,
		TopPages:       toPathCounts(r.TopPages),
		RecentEvents:   events,
		LiveFeed:       feed,
	}
}
