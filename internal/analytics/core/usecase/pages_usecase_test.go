package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"visitor-analytics-service/internal/analytics/core/domain"
)

// ------------------------------------------------------------
// PER-PAGE ENGAGEMENT
// ------------------------------------------------------------

func TestGetPages_PopularPages(t *testing.T) {
	store := &fakeEventStore{
		views: []domain.PageView{
			{PagePath: "/blog/divorce-guide", PageTitle: "", TimeOnPage: 120, ScrollDepth: 80, CreatedAt: testNow},
			{PagePath: "/blog/divorce-guide", PageTitle: "이혼 절차 안내", TimeOnPage: 60, ScrollDepth: 40, IsBounce: true, CreatedAt: testNow},
			{PagePath: "/contact", PageTitle: "상담 신청", TimeOnPage: 30, ScrollDepth: 100, CreatedAt: testNow},
		},
	}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetPagesInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.PopularPages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(out.PopularPages))
	}

	top := out.PopularPages[0]
	if top.Path != "/blog/divorce-guide" || top.Views != 2 {
		t.Fatalf("unexpected top page: %+v", top)
	}
	// First non-empty title wins, even when an earlier view had none.
	if top.Title != "이혼 절차 안내" {
		t.Fatalf("expected first non-empty title, got %q", top.Title)
	}
	if top.AvgTime != 90 || top.AvgScroll != 60 {
		t.Fatalf("unexpected averages: %+v", top)
	}
	if top.BounceRate != 50 {
		t.Fatalf("expected bounceRate=50, got %d", top.BounceRate)
	}
}

func TestGetPages_TitleFallsBackToPath(t *testing.T) {
	store := &fakeEventStore{
		views: []domain.PageView{
			{PagePath: "/about", CreatedAt: testNow},
		},
	}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetPagesInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PopularPages[0].Title != "/about" {
		t.Fatalf("expected title to fall back to path, got %q", out.PopularPages[0].Title)
	}
}

// ------------------------------------------------------------
// LANDING / EXIT RANKINGS
// ------------------------------------------------------------

func TestGetPages_LandingAndExit(t *testing.T) {
	store := &fakeEventStore{
		sessions: []domain.Session{
			{LandingPage: "/", ExitPage: "/contact", StartedAt: testNow},
			{LandingPage: "/", ExitPage: "/", StartedAt: testNow},
			{LandingPage: "/blog/divorce-guide", ExitPage: "/contact", StartedAt: testNow},
		},
	}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetPagesInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.LandingPages[0].Key != "/" || out.LandingPages[0].Count != 2 {
		t.Fatalf("unexpected top landing page: %+v", out.LandingPages[0])
	}
	if out.ExitPages[0].Key != "/contact" || out.ExitPages[0].Count != 2 {
		t.Fatalf("unexpected top exit page: %+v", out.ExitPages[0])
	}
}

func TestGetPages_LandingTruncatedToTwenty(t *testing.T) {
	sessions := make([]domain.Session, 0, 25)
	for i := 0; i < 25; i++ {
		sessions = append(sessions, domain.Session{
			LandingPage: fmt.Sprintf("/page-%d", i),
			StartedAt:   testNow,
		})
	}
	store := &fakeEventStore{sessions: sessions}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetPagesInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.LandingPages) != topLandingExitLimit {
		t.Fatalf("expected %d landing pages, got %d", topLandingExitLimit, len(out.LandingPages))
	}
}

// ------------------------------------------------------------
// EMPTY WINDOW + STORE FAILURE
// ------------------------------------------------------------

func TestGetPages_EmptyWindow(t *testing.T) {
	store := &fakeEventStore{}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	out, err := uc.Execute(context.Background(), GetPagesInput{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.PopularPages) != 0 {
		t.Fatalf("expected no pages, got %+v", out.PopularPages)
	}
}

func TestGetPages_StoreError(t *testing.T) {
	store := &fakeEventStore{sessionsErr: errors.New("db failure")}
	uc := NewGetPagesUseCase(store)
	uc.now = fixedNow

	if _, err := uc.Execute(context.Background(), GetPagesInput{Days: 30}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
