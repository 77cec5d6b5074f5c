package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo/dto"
)

// Search はYahoo Finance APIで銘柄候補を検索します。
// The search endpoint does not need a crumb.
func (m *YahooMarket) Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchQuote, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(opts.QuotesCount))
	q.Set("newsCount", strconv.Itoa(opts.NewsCount))

	var body dto.SearchResponse
	if err := m.getJSON(ctx, "/v1/finance/search", q, false, &body); err != nil {
		if body.Finance != nil {
			if msg := body.Finance.Error.Message(); msg != "" {
				return nil, fmt.Errorf("yahoo search %q: %s: %w", query, msg, err)
			}
		}
		return nil, fmt.Errorf("yahoo search %q: %w", query, err)
	}

	out := make([]entity.SearchQuote, 0, len(body.Quotes))
	for _, r := range body.Quotes {
		out = append(out, entity.SearchQuote{
			Symbol:    r.Symbol,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Exchange:  r.Exchange,
			QuoteType: r.QuoteType,
			TypeDisp:  r.TypeDisp,
		})
	}
	return out, nil
}
