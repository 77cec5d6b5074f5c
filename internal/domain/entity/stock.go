package entity

// Stock is the flattened quote snapshot served to the dashboard.
// It combines a Quote with selected QuoteSummary fields; pointer fields are
// nil when the provider did not report them.
type Stock struct {
	Symbol                     string
	ShortName                  string
	LongName                   string
	RegularMarketPrice         float64
	RegularMarketChange        float64
	RegularMarketChangePercent float64
	RegularMarketTime          int64
	MarketCap                  *float64
	Volume                     int64
	AverageVolume              *float64
	DayHigh                    float64
	DayLow                     float64
	FiftyTwoWeekHigh           *float64
	FiftyTwoWeekLow            *float64
	PERatio                    *float64
	ForwardPE                  *float64
	EPS                        *float64
	DividendYield              *float64
	Currency                   string
	Exchange                   string
}
