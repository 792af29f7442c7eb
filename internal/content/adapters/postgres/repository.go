package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"visitor-analytics-service/internal/content/core/domain"
	"visitor-analytics-service/internal/content/core/ports"
)

type ContentRepository struct {
	db DB
}

func NewContentRepository(db DB) *ContentRepository {
	return &ContentRepository{db: db}
}

var _ ports.ContentReaderPort = (*ContentRepository)(nil)

const getContentSQL = `
SELECT key, value, updated_at
FROM site_contents
WHERE key = $1`

func (r *ContentRepository) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	var c domain.SiteContent
	err := r.db.QueryRowContext(ctx, getContentSQL, key).Scan(&c.Key, &c.Value, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query site_contents: %w", err)
	}
	return &c, nil
}
