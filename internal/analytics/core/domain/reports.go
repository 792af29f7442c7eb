package domain

// KeyCount is one bucket of a categorical frequency table.
type KeyCount struct {
	Key   string
	Count int
}

// DailyCount is one calendar-day bucket of the traffic chart.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Views int
}

// OverviewReport is the window-wide traffic summary.
type OverviewReport struct {
	TotalViews     int
	UniqueVisitors int
	TotalSessions  int
	BounceRate     int // percent
	NewVisitors    int
	AvgDuration    int     // seconds
	AvgPages       float64 // one decimal
	TotalEvents    int
	DailyChart     []DailyCount
	HourlyHeatmap  []int // 24 slots, hour of day
}

// CampaignCount is one UTM campaign bucket.
type CampaignCount struct {
	Source   string
	Medium   string
	Campaign string
	Count    int
}

// ChannelReport breaks traffic down by acquisition source.
type ChannelReport struct {
	Channels    []KeyCount
	TopKeywords []KeyCount
	Campaigns   []CampaignCount
}

// ChannelPerformance is the conversion rate of one referrer type,
// computed over the conversion events seen on that channel.
type ChannelPerformance struct {
	Channel     string
	Sessions    int // total conversion events on the channel
	Conversions int // conversion-intent events on the channel
	Rate        int // percent
}

// ConversionReport covers the consultation funnel and related metrics.
type ConversionReport struct {
	Funnel                []KeyCount
	EventCounts           []KeyCount
	ConversionPaths       []KeyCount
	ChannelPerformance    []ChannelPerformance
	BlogContribution      int
	OverallConversionRate float64 // percent, one decimal
	TotalSessions         int
}

// DeviceReport is a set of independent device-attribute frequency tables.
type DeviceReport struct {
	DeviceTypes      []KeyCount
	Brands           []KeyCount
	Browsers         []KeyCount
	OperatingSystems []KeyCount
	Resolutions      []KeyCount
}

// PageStat is the engagement summary of one page path.
type PageStat struct {
	Path       string
	Title      string
	Views      int
	AvgTime    int // seconds
	AvgScroll  int // percent
	BounceRate int // percent
}

// PageReport covers per-page engagement plus landing/exit rankings.
type PageReport struct {
	PopularPages []PageStat
	LandingPages []KeyCount
	ExitPages    []KeyCount
}

// RealtimeSnapshot is the "who is on the site right now" view.
type RealtimeSnapshot struct {
	ActiveVisitors int
	TopPages       []KeyCount
	RecentEvents   []Conversion
	LiveFeed       []PageView
}
