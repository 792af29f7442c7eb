package fiber

import (
	"context"
	"log"
	"net/http"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetOverviewUseCase interface {
	Execute(ctx context.Context, in usecase.GetOverviewInput) (*domain.OverviewReport, error)
}

type GetChannelsUseCase interface {
	Execute(ctx context.Context, in usecase.GetChannelsInput) (*domain.ChannelReport, error)
}

type GetConversionsUseCase interface {
	Execute(ctx context.Context, in usecase.GetConversionsInput) (*domain.ConversionReport, error)
}

type GetDevicesUseCase interface {
	Execute(ctx context.Context, in usecase.GetDevicesInput) (*domain.DeviceReport, error)
}

type GetPagesUseCase interface {
	Execute(ctx context.Context, in usecase.GetPagesInput) (*domain.PageReport, error)
}

type GetRealtimeUseCase interface {
	Execute(ctx context.Context) (*domain.RealtimeSnapshot, error)
}

type AnalyticsHandler struct {
	overview    GetOverviewUseCase
	channels    GetChannelsUseCase
	conversions GetConversionsUseCase
	devices     GetDevicesUseCase
	pages       GetPagesUseCase
	realtime    GetRealtimeUseCase
}

func NewAnalyticsHandler(
	overview GetOverviewUseCase,
	channels GetChannelsUseCase,
	conversions GetConversionsUseCase,
	devices GetDevicesUseCase,
	pages GetPagesUseCase,
	realtime GetRealtimeUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		overview:    overview,
		channels:    channels,
		conversions: conversions,
		devices:     devices,
		pages:       pages,
		realtime:    realtime,
	}
}

// queryDays reads the optional days parameter. Non-numeric or missing
// values come back as 0; the window resolver turns that into the default.
func queryDays(c *fiber.Ctx) int {
	return c.QueryInt("days", 0)
}

// GetOverview godoc
// @Summary Traffic overview
// @Description Totals, rates, daily chart and hourly heatmap for the window
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	report, err := h.overview.Execute(c.UserContext(), usecase.GetOverviewInput{Days: queryDays(c)})
	if err != nil {
		log.Printf("overview query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "방문자 통계를 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newOverviewResponse(report))
}

// GetChannels godoc
// @Summary Channel attribution
// @Description Referrer distribution, top search keywords and UTM campaigns
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} ChannelsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/channels [get]
func (h *AnalyticsHandler) GetChannels(c *fiber.Ctx) error {
	report, err := h.channels.Execute(c.UserContext(), usecase.GetChannelsInput{Days: queryDays(c)})
	if err != nil {
		log.Printf("channels query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "유입 채널 통계를 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newChannelsResponse(report))
}

// GetConversions godoc
// @Summary Conversion funnel
// @Description Funnel stages, per-channel rates, conversion paths and blog contribution
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} ConversionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/conversions [get]
func (h *AnalyticsHandler) GetConversions(c *fiber.Ctx) error {
	report, err := h.conversions.Execute(c.UserContext(), usecase.GetConversionsInput{Days: queryDays(c)})
	if err != nil {
		log.Printf("conversions query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "전환 통계를 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newConversionsResponse(report))
}

// GetDevices godoc
// @Summary Device breakdown
// @Description Frequency tables for device type, brand, browser, OS and resolution
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} DevicesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/devices [get]
func (h *AnalyticsHandler) GetDevices(c *fiber.Ctx) error {
	report, err := h.devices.Execute(c.UserContext(), usecase.GetDevicesInput{Days: queryDays(c)})
	if err != nil {
		log.Printf("devices query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "기기 통계를 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newDevicesResponse(report))
}

// GetPages godoc
// @Summary Page engagement
// @Description Per-page views, time, scroll, bounce plus landing/exit rankings
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} PagesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/pages [get]
func (h *AnalyticsHandler) GetPages(c *fiber.Ctx) error {
	report, err := h.pages.Execute(c.UserContext(), usecase.GetPagesInput{Days: queryDays(c)})
	if err != nil {
		log.Printf("pages query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "페이지 통계를 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newPagesResponse(report))
}

// GetRealtime godoc
// @Summary Real-time snapshot
// @Description Active visitors and live activity over short rolling windows
// @Tags Analytics
// @Produce json
// @Success 200 {object} RealtimeResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/realtime [get]
func (h *AnalyticsHandler) GetRealtime(c *fiber.Ctx) error {
	// Intermediaries must never serve a stale snapshot.
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	c.Set(fiber.HeaderPragma, "no-cache")

	snapshot, err := h.realtime.Execute(c.UserContext())
	if err != nil {
		log.Printf("realtime query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "실시간 현황을 불러오지 못했습니다.",
		})
	}
	return c.Status(http.StatusOK).JSON(newRealtimeResponse(snapshot))
}
