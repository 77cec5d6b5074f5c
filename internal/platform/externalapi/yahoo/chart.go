package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo/dto"
)

// GetHistorical はYahoo Finance APIから時系列株価データを取得し、
// entity.Candleのスライスとして返します。
//
// opts の空フィールドはリクエストに含めないため、HistoricalOptions{} は
// Yahoo側のデフォルト（range と interval の既定値）で取得します。
func (m *YahooMarket) GetHistorical(ctx context.Context, symbol string, opts entity.HistoricalOptions) ([]entity.Candle, error) {
	q := url.Values{}
	switch {
	case !opts.Period1.IsZero():
		q.Set("period1", strconv.FormatInt(opts.Period1.Unix(), 10))
		end := opts.Period2
		if end.IsZero() {
			end = time.Now()
		}
		q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	case opts.Range != "":
		q.Set("range", opts.Range)
	}
	if opts.Interval != "" {
		q.Set("interval", opts.Interval)
	}

	var body dto.ChartResponse
	path := "/v8/finance/chart/" + url.PathEscape(symbol)
	if err := m.getJSON(ctx, path, q, false, &body); err != nil {
		if msg := body.Chart.Error.Message(); msg != "" {
			return nil, fmt.Errorf("yahoo chart %s: %s: %w", symbol, msg, err)
		}
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if msg := body.Chart.Error.Message(); msg != "" {
		return nil, fmt.Errorf("yahoo chart %s: %s", symbol, msg)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNotFound)
	}

	result := body.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		// 取引のない期間は空のシリーズとして返す
		return []entity.Candle{}, nil
	}
	quote := result.Indicators.Quote[0]

	candles := make([]entity.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o, h, l, c := at(quote.Open, i), at(quote.High, i), at(quote.Low, i), at(quote.Close, i)
		if o == nil && h == nil && l == nil && c == nil {
			continue // 取引のないスロット（休場など）はスキップ
		}

		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}

		candles = append(candles, entity.Candle{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   deref(o),
			High:   deref(h),
			Low:    deref(l),
			Close:  deref(c),
			Volume: vol,
		})
	}
	return candles, nil
}

// at returns s[i], or nil when i is out of range.
func at(s []*float64, i int) *float64 {
	if i >= len(s) {
		return nil
	}
	return s[i]
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
