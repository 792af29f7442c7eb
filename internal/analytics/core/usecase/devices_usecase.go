package usecase

import (
	"context"
	"time"

	"visitor-analytics-service/internal/analytics/core/domain"
	"visitor-analytics-service/internal/analytics/core/ports"
)

const topResolutionLimit = 15

type GetDevicesInput struct {
	Days int
}

// GetDevicesUseCase counts distinct values of each device attribute
// independently. No cross-field joins.
type GetDevicesUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewGetDevicesUseCase(store ports.EventStorePort) *GetDevicesUseCase {
	return &GetDevicesUseCase{store: store, now: time.Now}
}

func (uc *GetDevicesUseCase) Execute(ctx context.Context, in GetDevicesInput) (*domain.DeviceReport, error) {
	window := domain.NewTimeWindow(uc.now(), in.Days)
	tr := ports.TimeRange{Since: window.Since, Until: window.Until}

	views, err := uc.store.QueryPageViews(ctx, tr)
	if err != nil {
		return nil, err
	}

	return reduceDevices(views), nil
}

func reduceDevices(views []domain.PageView) *domain.DeviceReport {
	deviceTypes := newCounter()
	brands := newCounter()
	browsers := newCounter()
	systems := newCounter()
	resolutions := newCounter()

	for _, v := range views {
		deviceTypes.add(v.DeviceType)
		brands.add(v.DeviceBrand)
		browsers.add(v.Browser)
		systems.add(v.OS)
		resolutions.add(v.ScreenResolution)
	}

	return &domain.DeviceReport{
		DeviceTypes:      deviceTypes.pairs(),
		Brands:           brands.pairs(),
		Browsers:         browsers.pairs(),
		OperatingSystems: systems.pairs(),
		Resolutions:      resolutions.top(topResolutionLimit),
	}
}
