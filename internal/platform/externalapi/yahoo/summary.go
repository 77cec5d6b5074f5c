package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo/dto"
)

// GetQuoteSummary はYahoo Finance APIから指定モジュールのファンダメンタルズを取得します。
func (m *YahooMarket) GetQuoteSummary(ctx context.Context, symbol string, modules []string) (*entity.QuoteSummary, error) {
	if len(modules) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary %s: no modules requested", symbol)
	}
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))

	var body dto.QuoteSummaryResponse
	path := "/v10/finance/quoteSummary/" + url.PathEscape(symbol)
	if err := m.getJSON(ctx, path, q, true, &body); err != nil {
		if msg := body.QuoteSummary.Error.Message(); msg != "" {
			return nil, fmt.Errorf("yahoo quoteSummary %s: %s: %w", symbol, msg, err)
		}
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}
	if msg := body.QuoteSummary.Error.Message(); msg != "" {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %s", symbol, msg)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, ErrNotFound)
	}

	return toQuoteSummary(body.QuoteSummary.Result[0]), nil
}

// toQuoteSummary はDTOをドメインエンティティに変換します。
func toQuoteSummary(r dto.QuoteSummaryResult) *entity.QuoteSummary {
	out := &entity.QuoteSummary{}
	if p := r.Price; p != nil {
		out.Price = &entity.PriceModule{
			MarketCap: p.MarketCap.Ptr(),
			Currency:  p.Currency,
		}
	}
	if sd := r.SummaryDetail; sd != nil {
		out.SummaryDetail = &entity.SummaryDetail{
			AverageVolume:    sd.AverageVolume.Ptr(),
			FiftyTwoWeekHigh: sd.FiftyTwoWeekHigh.Ptr(),
			FiftyTwoWeekLow:  sd.FiftyTwoWeekLow.Ptr(),
			DividendYield:    sd.DividendYield.Ptr(),
			MarketCap:        sd.MarketCap.Ptr(),
			TrailingPE:       sd.TrailingPE.Ptr(),
		}
	}
	if ks := r.DefaultKeyStatistics; ks != nil {
		out.DefaultKeyStatistics = &entity.KeyStatistics{
			MarketCap:   ks.MarketCap.Ptr(),
			TrailingPE:  ks.TrailingPE.Ptr(),
			ForwardPE:   ks.ForwardPE.Ptr(),
			TrailingEps: ks.TrailingEps.Ptr(),
		}
	}
	if fd := r.FinancialData; fd != nil {
		out.FinancialData = &entity.FinancialData{
			CurrentPrice:      fd.CurrentPrice.Ptr(),
			TargetMeanPrice:   fd.TargetMeanPrice.Ptr(),
			RecommendationKey: fd.RecommendationKey,
		}
	}
	return out
}
