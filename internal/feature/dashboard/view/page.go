package view

import "github.com/biggame27/stock-checker/internal/feature/historical/domain"

// Search box tuning passed to the browser script.
const (
	MinQueryLength = 2
	DebounceMillis = 300
)

// PopularSymbols are offered on the welcome panel.
var PopularSymbols = []string{"AAPL", "TSLA", "MSFT", "GOOGL", "AMZN"}

// Timeframe is a chart period button.
type Timeframe struct {
	Label  string
	Period domain.Period
}

// Timeframes are the chart buttons in display order.
var Timeframes = []Timeframe{
	{"1D", domain.Period1D},
	{"5D", domain.Period5D},
	{"1M", domain.Period1Mo},
	{"3M", domain.Period3Mo},
	{"6M", domain.Period6Mo},
	{"1Y", domain.Period1Y},
	{"2Y", domain.Period2Y},
	{"5Y", domain.Period5Y},
}

// Page is the data of the page shell template.
type Page struct {
	Title          string
	PopularSymbols []string
	Timeframes     []Timeframe
	DefaultPeriod  domain.Period
	MinQueryLength int
	DebounceMillis int
}

// NewPage returns the page shell data.
func NewPage(title string) Page {
	return Page{
		Title:          title,
		PopularSymbols: PopularSymbols,
		Timeframes:     Timeframes,
		DefaultPeriod:  domain.DefaultPeriod,
		MinQueryLength: MinQueryLength,
		DebounceMillis: DebounceMillis,
	}
}

// CardFragment is the data of the stock card template. Exactly one of Card and Error is set.
type CardFragment struct {
	Card  *StockCard
	Error string
}
