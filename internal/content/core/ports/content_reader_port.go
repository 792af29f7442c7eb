package ports

import (
	"context"

	"visitor-analytics-service/internal/content/core/domain"
)

type ContentReaderPort interface {
	// GetContent returns domain.ErrContentNotFound for unknown keys.
	GetContent(ctx context.Context, key string) (*domain.SiteContent, error)
}
