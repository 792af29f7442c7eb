package usecase

import (
	"context"
	"errors"
	"testing"

	"visitor-analytics-service/internal/analytics/core/domain"
)

// ------------------------------------------------------------
// REFERRER DISTRIBUTION with default bucket
// ------------------------------------------------------------

func TestGetChannels_ReferrerDistribution(t *testing.T) {
	store := &fakeEventStore{
		views: []domain.PageView{
			{ReferrerType: "search", CreatedAt: testNow},
			{ReferrerType: "search", CreatedAt: testNow},
			{ReferrerType: "social", CreatedAt: testNow},
			{ReferrerType: "", CreatedAt: testNow}, // missing → direct
		},
	}
	uc := NewGetChannelsUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetChannelsInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Channels) != 3 {
		t.Fatalf("expected 3 channels, got %d", len(out.Channels))
	}
	if out.Channels[0].Key != "search" || out.Channels[0].Count != 2 {
		t.Fatalf("expected search first with 2, got %+v", out.Channels[0])
	}

	sum := 0
	foundDirect := false
	for _, c := range out.Channels {
		sum += c.Count
		if c.Key == domain.ReferrerDirect && c.Count == 1 {
			foundDirect = true
		}
	}
	if sum != 4 {
		t.Fatalf("every view must be attributed, sum=%d", sum)
	}
	if !foundDirect {
		t.Fatalf("missing referrer must land in the direct bucket: %+v", out.Channels)
	}
}

// ------------------------------------------------------------
// TOP KEYWORDS (exact string grouping)
// ------------------------------------------------------------

func TestGetChannels_TopKeywords(t *testing.T) {
	store := &fakeEventStore{
		views: []domain.PageView{
			{SearchKeyword: "이혼", CreatedAt: testNow},
			{SearchKeyword: "이혼", CreatedAt: testNow},
			{SearchKeyword: "상속", CreatedAt: testNow},
			{SearchKeyword: "", CreatedAt: testNow}, // no keyword, excluded
		},
	}
	uc := NewGetChannelsUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetChannelsInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.TopKeywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(out.TopKeywords))
	}
	if out.TopKeywords[0].Key != "이혼" || out.TopKeywords[0].Count != 2 {
		t.Fatalf("unexpected first keyword: %+v", out.TopKeywords[0])
	}
	if out.TopKeywords[1].Key != "상속" || out.TopKeywords[1].Count != 1 {
		t.Fatalf("unexpected second keyword: %+v", out.TopKeywords[1])
	}
}

func TestGetChannels_KeywordsTruncatedToTwenty(t *testing.T) {
	views := make([]domain.PageView, 0, 25)
	for i := 0; i < 25; i++ {
		views = append(views, domain.PageView{
			SearchKeyword: string(rune('a' + i)),
			CreatedAt:     testNow,
		})
	}
	store := &fakeEventStore{views: views}
	uc := NewGetChannelsUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetChannelsInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.TopKeywords) != topKeywordLimit {
		t.Fatalf("expected %d keywords, got %d", topKeywordLimit, len(out.TopKeywords))
	}
}

// ------------------------------------------------------------
// UTM CAMPAIGNS (composite key, source required)
// ------------------------------------------------------------

func TestGetChannels_Campaigns(t *testing.T) {
	store := &fakeEventStore{
		sessions: []domain.Session{
			{UTMSource: "naver", UTMMedium: "cpc", UTMCampaign: "divorce_2026", StartedAt: testNow},
			{UTMSource: "naver", UTMMedium: "cpc", UTMCampaign: "divorce_2026", StartedAt: testNow},
			{UTMSource: "naver", UTMMedium: "", UTMCampaign: "", StartedAt: testNow},
			{UTMSource: "", UTMMedium: "cpc", UTMCampaign: "x", StartedAt: testNow}, // no source, excluded
		},
	}
	uc := NewGetChannelsUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetChannelsInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Campaigns) != 2 {
		t.Fatalf("expected 2 campaign groups, got %d", len(out.Campaigns))
	}
	first := out.Campaigns[0]
	if first.Source != "naver" || first.Medium != "cpc" || first.Campaign != "divorce_2026" || first.Count != 2 {
		t.Fatalf("unexpected first campaign: %+v", first)
	}
	second := out.Campaigns[1]
	if second.Source != "naver" || second.Medium != "" || second.Count != 1 {
		t.Fatalf("unexpected second campaign: %+v", second)
	}
}

// ------------------------------------------------------------
// STORE FAILURE
// ------------------------------------------------------------

func TestGetChannels_StoreError(t *testing.T) {
	store := &fakeEventStore{viewsErr: errors.New("db failure")}
	uc := NewGetChannelsUseCase(store)
	uc.now = fixedNow

	if _, err := uc.Execute(context.Background(), GetChannelsInput{Days: 30}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
