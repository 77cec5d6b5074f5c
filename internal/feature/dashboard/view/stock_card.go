package view

import (
	"time"

	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// LastUpdatedLayout is the timestamp format of the card footer.
const LastUpdatedLayout = "Jan 2, 2006 3:04 PM MST"

// StockCard is the display model of the stock card fragment.
// Every field is preformatted; empty optional fields are not rendered.
type StockCard struct {
	Symbol    string
	ShortName string
	LongName  string // empty when equal to ShortName

	Price         string
	Change        string
	ChangePercent string
	Positive      bool

	MarketCap string
	Volume    string
	PERatio   string
	Exchange  string

	DayRange          string
	FiftyTwoWeekRange string

	LastUpdated   string
	EPS           string
	DividendYield string
}

// NewStockCard formats s for display. Times are rendered in loc, or UTC when loc is nil.
func NewStockCard(s *entity.Stock, loc *time.Location) StockCard {
	if loc == nil {
		loc = time.UTC
	}
	positive := s.RegularMarketChange >= 0

	card := StockCard{
		Symbol:            s.Symbol,
		ShortName:         s.ShortName,
		Price:             FormatPrice(s.RegularMarketPrice),
		Change:            FormatPrice(s.RegularMarketChange),
		ChangePercent:     FormatPercent(s.RegularMarketChangePercent),
		Positive:          positive,
		MarketCap:         FormatMoney(s.MarketCap),
		Volume:            FormatVolume(float64Ptr(float64(s.Volume))),
		PERatio:           FormatRatio(s.PERatio),
		Exchange:          s.Exchange,
		DayRange:          FormatPrice(s.DayLow) + " - " + FormatPrice(s.DayHigh),
		FiftyTwoWeekRange: FormatMoney(s.FiftyTwoWeekLow) + " - " + FormatMoney(s.FiftyTwoWeekHigh),
		LastUpdated:       time.Unix(s.RegularMarketTime, 0).In(loc).Format(LastUpdatedLayout),
	}
	if positive {
		card.Change = "+" + card.Change
	}
	if s.LongName != s.ShortName {
		card.LongName = s.LongName
	}
	if s.EPS != nil && *s.EPS != 0 {
		card.EPS = FormatPrice(*s.EPS)
	}
	if s.DividendYield != nil && *s.DividendYield != 0 {
		card.DividendYield = FormatFraction(*s.DividendYield)
	}
	return card
}

func float64Ptr(v float64) *float64 { return &v }
