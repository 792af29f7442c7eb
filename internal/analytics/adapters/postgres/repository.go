package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// EventStoreRepository reads the three event collections written by the
// tracking layer. Each query is a plain column projection over a time
// range; nothing is aggregated here.
type EventStoreRepository struct {
	db DB
}

func NewEventStoreRepository(db DB) *EventStoreRepository {
	return &EventStoreRepository{db: db}
}

var _ ports.EventStorePort = (*EventStoreRepository)(nil)

const pageViewsSQL = `
SELECT
    visitor_id,
    session_id,
    page_path,
    page_title,
    referrer_type,
    search_keyword,
    device_type,
    device_brand,
    browser,
    os,
    screen_resolution,
    time_on_page,
    scroll_depth,
    is_bounce,
    created_at
FROM page_views
WHERE created_at >= $1 AND created_at < $2`

func (r *EventStoreRepository) QueryPageViews(ctx context.Context, tr ports.TimeRange) ([]domain.PageView, error) {
	rows, err := r.db.QueryContext(ctx, pageViewsSQL, tr.Since, tr.Until)
	if err != nil {
		return nil, fmt.Errorf("query page_views: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PageView, 0)
	for rows.Next() {
		var (
			v                           domain.PageView
			title, referrer, keyword    sql.NullString
			deviceType, deviceBrand     sql.NullString
			browser, osName, resolution sql.NullString
			timeOnPage, scrollDepth     sql.NullInt64
		)
		if err := rows.Scan(
			&v.VisitorID,
			&v.SessionID,
			&v.PagePath,
			&title,
			&referrer,
			&keyword,
			&deviceType,
			&deviceBrand,
			&browser,
			&osName,
			&resolution,
			&timeOnPage,
			&scrollDepth,
			&v.IsBounce,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan page_views: %w", err)
		}
		v.PageTitle = title.String
		v.ReferrerType = referrer.String
		v.SearchKeyword = keyword.String
		v.DeviceType = deviceType.String
		v.DeviceBrand = deviceBrand.String
		v.Browser = browser.String
		v.OS = osName.String
		v.ScreenResolution = resolution.String
		v.TimeOnPage = int(timeOnPage.Int64)
		v.ScrollDepth = int(scrollDepth.Int64)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate page_views: %w", err)
	}
	return out, nil
}

const sessionsSQL = `
SELECT
    visitor_id,
    is_bounce,
    is_new_visitor,
    total_duration,
    page_count,
    landing_page,
    exit_page,
    utm_source,
    utm_medium,
    utm_campaign,
    started_at
FROM visitor_sessions
WHERE started_at >= $1 AND started_at < $2`

func (r *EventStoreRepository) QuerySessions(ctx context.Context, tr ports.TimeRange) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, sessionsSQL, tr.Since, tr.Until)
	if err != nil {
		return nil, fmt.Errorf("query visitor_sessions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Session, 0)
	for rows.Next() {
		var (
			s                        domain.Session
			landing, exit            sql.NullString
			source, medium, campaign sql.NullString
			duration, pageCount      sql.NullInt64
		)
		if err := rows.Scan(
			&s.VisitorID,
			&s.IsBounce,
			&s.IsNewVisitor,
			&duration,
			&pageCount,
			&landing,
			&exit,
			&source,
			&medium,
			&campaign,
			&s.StartedAt,
		); err != nil {
			return nil, fmt.Errorf("scan visitor_sessions: %w", err)
		}
		s.TotalDuration = int(duration.Int64)
		s.PageCount = int(pageCount.Int64)
		s.LandingPage = landing.String
		s.ExitPage = exit.String
		s.UTMSource = source.String
		s.UTMMedium = medium.String
		s.UTMCampaign = campaign.String
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visitor_sessions: %w", err)
	}
	return out, nil
}

const conversionsSQL = `
SELECT
    session_id,
    event_type,
    event_label,
    page_path,
    referrer_type,
    device_type,
    created_at
FROM conversion_events
WHERE created_at >= $1 AND created_at < $2`

func (r *EventStoreRepository) QueryConversionEvents(ctx context.Context, tr ports.TimeRange) ([]domain.Conversion, error) {
	rows, err := r.db.QueryContext(ctx, conversionsSQL, tr.Since, tr.Until)
	if err != nil {
		return nil, fmt.Errorf("query conversion_events: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Conversion, 0)
	for rows.Next() {
		var (
			c                    domain.Conversion
			label, path          sql.NullString
			referrer, deviceType sql.NullString
		)
		if err := rows.Scan(
			&c.SessionID,
			&c.EventType,
			&label,
			&path,
			&referrer,
			&deviceType,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversion_events: %w", err)
		}
		c.EventLabel = label.String
		c.PagePath = path.String
		c.ReferrerType = referrer.String
		c.DeviceType = deviceType.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversion_events: %w", err)
	}
	return out, nil
}
