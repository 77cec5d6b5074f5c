// Package api defines the JSON shapes served by the HTTP API and consumed by the dashboard.
package api

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StockResponse is the body of GET /api/stock.
// Optional fields are omitted when the provider did not report them.
type StockResponse struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
	RegularMarketPrice         float64  `json:"regularMarketPrice"`
	RegularMarketChange        float64  `json:"regularMarketChange"`
	RegularMarketChangePercent float64  `json:"regularMarketChangePercent"`
	RegularMarketTime          int64    `json:"regularMarketTime"`
	MarketCap                  *float64 `json:"marketCap,omitempty"`
	Volume                     int64    `json:"volume"`
	AverageVolume              *float64 `json:"averageVolume,omitempty"`
	DayHigh                    float64  `json:"dayHigh"`
	DayLow                     float64  `json:"dayLow"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow,omitempty"`
	PERatio                    *float64 `json:"peRatio,omitempty"`
	ForwardPE                  *float64 `json:"forwardPE,omitempty"`
	EPS                        *float64 `json:"eps,omitempty"`
	DividendYield              *float64 `json:"dividendYield,omitempty"`
	Currency                   string   `json:"currency"`
	Exchange                   string   `json:"exchange"`
}

// StockSearchResult is one entry of a search response.
type StockSearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Exchange  string `json:"exchange"`
	Type      string `json:"type"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Stocks []StockSearchResult `json:"stocks"`
}

// HistoricalPoint is one bar of a historical series.
type HistoricalPoint struct {
	Date   string  `json:"date"`   // RFC3339, UTC
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// HistoricalResponse is the body of GET /api/historical.
type HistoricalResponse struct {
	Symbol        string            `json:"symbol"`
	Period        string            `json:"period"`
	Data          []HistoricalPoint `json:"data"`
	CurrentPrice  float64           `json:"currentPrice"`
	Change        float64           `json:"change"`
	ChangePercent float64           `json:"changePercent"`
}

// HistoricalErrorResponse is the 500 body of GET /api/historical.
// It echoes the request so the caller can tell which series failed.
type HistoricalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Symbol  string `json:"symbol"`
	Period  string `json:"period"`
}
