package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"

	"visitor-analytics-service/internal/content/core/domain"

	"github.com/gofiber/fiber/v2"
)

type GetSiteContentUseCase interface {
	Execute(ctx context.Context, key string) (*domain.SiteContent, error)
	Invalidate(key string)
}

type ContentHandler struct {
	uc GetSiteContentUseCase
}

func NewContentHandler(uc GetSiteContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// GetContent godoc
// @Summary Look up one site content fragment
// @Description Served from a short-TTL cache; edits are picked up after invalidation
// @Tags Content
// @Produce json
// @Param key path string true "Content key"
// @Success 200 {object} ContentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/site-content/{key} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	key := c.Params("key")

	content, err := h.uc.Execute(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "요청한 콘텐츠를 찾을 수 없습니다.",
			})
		}
		log.Printf("site content lookup failed for %q: %v", key, err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "콘텐츠를 불러오지 못했습니다.",
		})
	}

	return c.Status(http.StatusOK).JSON(ContentResponse{
		Key:       content.Key,
		Value:     content.Value,
		UpdatedAt: content.UpdatedAt,
	})
}

// Invalidate godoc
// @Summary Evict one content key from the cache
// @Description Called by the admin dashboard after saving an edit
// @Tags Content
// @Param key path string true "Content key"
// @Success 204
// @Router /api/site-content/{key}/invalidate [post]
func (h *ContentHandler) Invalidate(c *fiber.Ctx) error {
	h.uc.Invalidate(c.Params("key"))
	return c.SendStatus(http.StatusNoContent)
}
