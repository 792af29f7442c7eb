package ports

import (
	"context"
	"time"

	"visitor-analytics-service/internal/analytics/core/domain"
)

// TimeRange is a half-open [Since, Until) filter pushed down to the store.
type TimeRange struct {
	Since time.Time
	Until time.Time
}

// EventStorePort is the narrow read contract against the event store.
// Each operation is a filtered column projection over one collection;
// no aggregation is pushed down. All reduction happens in the usecases.
type EventStorePort interface {
	QueryPageViews(ctx context.Context, r TimeRange) ([]domain.PageView, error)
	QuerySessions(ctx context.Context, r TimeRange) ([]domain.Session, error)
	QueryConversionEvents(ctx context.Context, r TimeRange) ([]domain.Conversion, error)
}
