package usecase

import (
	"context"
	"errors"

	"visitor-analytics-service/internal/content/core/domain"
	"visitor-analytics-service/internal/content/core/ports"
)

var ErrInvalidContentKey = errors.New("invalid content key")

// Cache is the lookup cache injected into the usecase. Values are stored
// under the logical content key; expiry is the cache's concern.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
}

// GetSiteContentUseCase serves site content lookups, consulting the cache
// before the store so unchanged configuration is not refetched within the
// TTL. The admin dashboard calls Invalidate after an edit.
type GetSiteContentUseCase struct {
	reader ports.ContentReaderPort
	cache  Cache
}

func NewGetSiteContentUseCase(reader ports.ContentReaderPort, cache Cache) *GetSiteContentUseCase {
	return &GetSiteContentUseCase{reader: reader, cache: cache}
}

func (uc *GetSiteContentUseCase) Execute(ctx context.Context, key string) (*domain.SiteContent, error) {
	if key == "" {
		return nil, ErrInvalidContentKey
	}

	if v, ok := uc.cache.Get(key); ok {
		return v.(*domain.SiteContent), nil
	}

	content, err := uc.reader.GetContent(ctx, key)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, content)
	return content, nil
}

// Invalidate evicts key so the next lookup hits the store.
func (uc *GetSiteContentUseCase) Invalidate(key string) {
	uc.cache.Invalidate(key)
}
