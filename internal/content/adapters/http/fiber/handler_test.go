package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "visitor-analytics-service/internal/content/adapters/http/fiber"
	"visitor-analytics-service/internal/content/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface the handler depends on.
type fakeContentUseCase struct {
	ExecuteFn       func(ctx context.Context, key string) (*domain.SiteContent, error)
	invalidatedKeys []string
}

func (f *fakeContentUseCase) Execute(ctx context.Context, key string) (*domain.SiteContent, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, key)
	}
	return nil, domain.ErrContentNotFound
}

func (f *fakeContentUseCase) Invalidate(key string) {
	f.invalidatedKeys = append(f.invalidatedKeys, key)
}

func setupApp(t *testing.T, uc httpadapter.GetSiteContentUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewContentHandler(uc)
	app.Get("/api/site-content/:key", h.GetContent)
	app.Post("/api/site-content/:key/invalidate", h.Invalidate)
	return app
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetContent_Success(t *testing.T) {
	updated := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	uc := &fakeContentUseCase{
		ExecuteFn: func(ctx context.Context, key string) (*domain.SiteContent, error) {
			if key != "office_hours" {
				t.Fatalf("expected key office_hours, got %s", key)
			}
			return &domain.SiteContent{Key: key, Value: "평일 09:00 - 18:00", UpdatedAt: updated}, nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/site-content/office_hours", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal body %q: %v", body, err)
	}
	if out.Key != "office_hours" || out.Value != "평일 09:00 - 18:00" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

// ------------------------------------------------------------
// NOT FOUND -> 404 with localized error
// ------------------------------------------------------------

func TestGetContent_NotFound(t *testing.T) {
	uc := &fakeContentUseCase{}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/site-content/missing", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal body %q: %v", body, err)
	}
	if out["error"] == "" {
		t.Fatalf("expected error message in body, got %v", out)
	}
}

// ------------------------------------------------------------
// STORE ERROR -> 500
// ------------------------------------------------------------

func TestGetContent_InternalError(t *testing.T) {
	uc := &fakeContentUseCase{
		ExecuteFn: func(ctx context.Context, key string) (*domain.SiteContent, error) {
			return nil, context.DeadlineExceeded
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/site-content/office_hours", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// INVALIDATE -> 204, key forwarded
// ------------------------------------------------------------

func TestInvalidate_Success(t *testing.T) {
	uc := &fakeContentUseCase{}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/api/site-content/office_hours/invalidate", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}
	if len(uc.invalidatedKeys) != 1 || uc.invalidatedKeys[0] != "office_hours" {
		t.Fatalf("expected office_hours to be invalidated, got %v", uc.invalidatedKeys)
	}
}
