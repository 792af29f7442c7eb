package domain

import "time"

// ReferrerDirect is the canonical bucket for page views and conversion
// events that arrive without a referrer type. Rows are attributed to it
// rather than dropped.
const ReferrerDirect = "direct"

// Conversion event types written by the tracking layer.
const (
	EventFormOpen   = "form_open"
	EventFormSubmit = "form_submit"
	EventKakaoClick = "kakao_click"
	EventPhoneClick = "phone_click"
	EventBlogRead   = "blog_read"
)

// PageView is one page render recorded by the tracker. Immutable once
// written; this service only reads.
type PageView struct {
	VisitorID        string
	SessionID        string
	PagePath         string
	PageTitle        string
	ReferrerType     string
	SearchKeyword    string
	DeviceType       string
	DeviceBrand      string
	Browser          string
	OS               string
	ScreenResolution string
	TimeOnPage       int // seconds
	ScrollDepth      int // 0-100
	IsBounce         bool
	CreatedAt        time.Time
}

// Session aggregates the page views of a single visit. The tracking layer
// finalizes it when the visit ends; rows are read as they exist at query
// time, closed or not.
type Session struct {
	VisitorID     string
	IsBounce      bool
	IsNewVisitor  bool
	TotalDuration int // seconds
	PageCount     int
	LandingPage   string
	ExitPage      string
	UTMSource     string
	UTMMedium     string
	UTMCampaign   string
	StartedAt     time.Time
}

// Conversion is a single conversion-related action: a consultation form
// open or submit, a KakaoTalk click, a phone click, or a blog read.
type Conversion struct {
	SessionID    string
	EventType    string
	EventLabel   string
	PagePath     string
	ReferrerType string
	DeviceType   string
	CreatedAt    time.Time
}
