// Package usecase は銘柄スナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// SummaryModules はスナップショットに必要なquoteSummaryモジュールです。
var SummaryModules = []string{
	entity.ModulePrice,
	entity.ModuleSummaryDetail,
	entity.ModuleDefaultKeyStatistics,
	entity.ModuleFinancialData,
}

// MarketRepository はクォートと企業指標を取得する外部APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetQuoteSummary(ctx context.Context, symbol string, modules []string) (*entity.QuoteSummary, error)
}

// QuoteUsecase は銘柄スナップショット取得のユースケースを定義します。
type QuoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// GetStock はクォートとquoteSummaryを順に取得し、1つのスナップショットに平坦化します。
// どちらかの呼び出しが失敗した場合はそのエラーを返します。
func (u *QuoteUsecase) GetStock(ctx context.Context, symbol string) (*entity.Stock, error) {
	q, err := u.market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	summary, err := u.market.GetQuoteSummary(ctx, symbol, SummaryModules)
	if err != nil {
		return nil, err
	}

	return flatten(q, summary), nil
}

// flatten merges the quote with the summary modules.
// Key statistics take precedence; summaryDetail and price fill the gaps.
func flatten(q *entity.Quote, s *entity.QuoteSummary) *entity.Stock {
	st := &entity.Stock{
		Symbol:                     q.Symbol,
		ShortName:                  q.ShortName,
		LongName:                   q.LongName,
		RegularMarketPrice:         q.RegularMarketPrice,
		RegularMarketChange:        q.RegularMarketChange,
		RegularMarketChangePercent: q.RegularMarketChangePercent,
		RegularMarketTime:          q.RegularMarketTime,
		Volume:                     q.RegularMarketVolume,
		DayHigh:                    q.RegularMarketDayHigh,
		DayLow:                     q.RegularMarketDayLow,
		Currency:                   q.Currency,
		Exchange:                   q.Exchange,
	}
	if s == nil {
		return st
	}

	if ks := s.DefaultKeyStatistics; ks != nil {
		st.MarketCap = ks.MarketCap
		st.PERatio = ks.TrailingPE
		st.ForwardPE = ks.ForwardPE
		st.EPS = ks.TrailingEps
	}
	if sd := s.SummaryDetail; sd != nil {
		st.AverageVolume = sd.AverageVolume
		st.FiftyTwoWeekHigh = sd.FiftyTwoWeekHigh
		st.FiftyTwoWeekLow = sd.FiftyTwoWeekLow
		st.DividendYield = sd.DividendYield
		st.MarketCap = firstNonNil(st.MarketCap, sd.MarketCap)
		st.PERatio = firstNonNil(st.PERatio, sd.TrailingPE)
	}
	if p := s.Price; p != nil {
		st.MarketCap = firstNonNil(st.MarketCap, p.MarketCap)
		if st.Currency == "" {
			st.Currency = p.Currency
		}
	}
	return st
}

func firstNonNil(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}
