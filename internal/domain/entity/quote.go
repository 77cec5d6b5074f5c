package entity

// Quote is the real-time quote of a single symbol as reported by the provider.
type Quote struct {
	Symbol                     string
	ShortName                  string
	LongName                   string
	RegularMarketPrice         float64
	RegularMarketChange        float64
	RegularMarketChangePercent float64
	RegularMarketTime          int64 // Unix seconds
	RegularMarketVolume        int64
	RegularMarketDayHigh       float64
	RegularMarketDayLow        float64
	Currency                   string
	Exchange                   string
}
