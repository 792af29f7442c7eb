package usecase

import (
	"context"
	"sync"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

// fakeEventStore implements ports.EventStorePort for tests. The usecases
// query it from multiple goroutines, so recorded state sits behind a
// mutex.
type fakeEventStore struct {
	mu sync.Mutex

	views       []domain.PageView
	sessions    []domain.Session
	conversions []domain.Conversion

	viewsErr       error
	sessionsErr    error
	conversionsErr error

	lastRange ports.TimeRange
	calls     int
}

func (f *fakeEventStore) QueryPageViews(ctx context.Context, r ports.TimeRange) ([]domain.PageView, error) {
	f.record(r)
	if f.viewsErr != nil {
		return nil, f.viewsErr
	}
	return f.views, nil
}

func (f *fakeEventStore) QuerySessions(ctx context.Context, r ports.TimeRange) ([]domain.Session, error) {
	f.record(r)
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func (f *fakeEventStore) QueryConversionEvents(ctx context.Context, r ports.TimeRange) ([]domain.Conversion, error) {
	f.record(r)
	if f.conversionsErr != nil {
		return nil, f.conversionsErr
	}
	return f.conversions, nil
}

func (f *fakeEventStore) record(r ports.TimeRange) {
	f.mu.Lock()
	f.lastRange = r
	f.calls++
	f.mu.Unlock()
}

func (f *fakeEventStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeEventStore) recordedRange() ports.TimeRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRange
}
