// Package usecase は時系列価格データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/feature/historical/domain"
)

// MarketRepository は時系列データと現在値を取得する外部APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	GetHistorical(ctx context.Context, symbol string, opts entity.HistoricalOptions) ([]entity.Candle, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// Series はチャート描画用の時系列データと現在値のサマリーです。
type Series struct {
	Symbol        string
	Period        domain.Period
	Candles       []entity.Candle
	CurrentPrice  float64
	Change        float64
	ChangePercent float64
}

// HistoricalUsecase は時系列データ取得のユースケースを定義します。
type HistoricalUsecase struct {
	market MarketRepository
	now    func() time.Time
}

// NewHistoricalUsecase はHistoricalUsecaseの新しいインスタンスを生成します。
func NewHistoricalUsecase(market MarketRepository) *HistoricalUsecase {
	return &HistoricalUsecase{market: market, now: time.Now}
}

// GetHistorical は指定された銘柄と期間の時系列データを取得し、現在値と合わせて返します。
// 時系列の取得はfallbackPlanの順に試行し、最初に成功した結果を使います。
func (u *HistoricalUsecase) GetHistorical(ctx context.Context, symbol string, period domain.Period) (*Series, error) {
	candles, _, err := u.runPlan(ctx, symbol, fallbackPlan(period, u.now()))
	if err != nil {
		return nil, err
	}

	q, err := u.market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return &Series{
		Symbol:        symbol,
		Period:        period,
		Candles:       candles,
		CurrentPrice:  q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
	}, nil
}
