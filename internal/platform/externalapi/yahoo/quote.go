package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo/dto"
)

// GetQuote はYahoo Finance APIから銘柄の気配値を取得します。
func (m *YahooMarket) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	q := url.Values{}
	q.Set("symbols", symbol)

	var body dto.QuoteResponse
	if err := m.getJSON(ctx, "/v7/finance/quote", q, true, &body); err != nil {
		if msg := body.QuoteResponse.Error.Message(); msg != "" {
			return nil, fmt.Errorf("yahoo quote %s: %s: %w", symbol, msg, err)
		}
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if msg := body.QuoteResponse.Error.Message(); msg != "" {
		return nil, fmt.Errorf("yahoo quote %s: %s", symbol, msg)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, ErrNotFound)
	}

	r := body.QuoteResponse.Result[0]
	return &entity.Quote{
		Symbol:                     r.Symbol,
		ShortName:                  r.ShortName,
		LongName:                   r.LongName,
		RegularMarketPrice:         r.RegularMarketPrice,
		RegularMarketChange:        r.RegularMarketChange,
		RegularMarketChangePercent: r.RegularMarketChangePercent,
		RegularMarketTime:          r.RegularMarketTime,
		RegularMarketVolume:        r.RegularMarketVolume,
		RegularMarketDayHigh:       r.RegularMarketDayHigh,
		RegularMarketDayLow:        r.RegularMarketDayLow,
		Currency:                   r.Currency,
		Exchange:                   r.Exchange,
	}, nil
}
