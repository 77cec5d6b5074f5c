// Package entity defines the market data models shared by the features.
package entity

import "time"

// Candle represents one OHLCV bar of a historical price series.
type Candle struct {
	Time   time.Time // Start of the bar
	Open   float64   // Opening price
	High   float64   // Highest price during the bar
	Low    float64   // Lowest price during the bar
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// HistoricalOptions narrows a historical series request.
// Zero values are left out of the upstream request, so HistoricalOptions{}
// asks the provider for its defaults.
type HistoricalOptions struct {
	Period1  time.Time // Start of the window
	Period2  time.Time // End of the window
	Range    string    // Provider range keyword such as "1mo"; ignored when Period1 is set
	Interval string    // Bar size such as "5m" or "1d"
}

// IsZero reports whether no option is set.
func (o HistoricalOptions) IsZero() bool {
	return o.Period1.IsZero() && o.Period2.IsZero() && o.Range == "" && o.Interval == ""
}
