package fiber

import "time"

type ContentResponse struct {
	Key       string    `json:"key" example:"office_hours"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"요청한 콘텐츠를 찾을 수 없습니다."`
}
