// Package repository defines the contracts of external data sources.
package repository

import (
	"context"

	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。各フィーチャーは必要なメソッドだけを自分のインターフェースとして定義します。
type MarketRepository interface {
	// GetQuote は銘柄のリアルタイム気配値を返します。
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	// GetQuoteSummary は指定モジュールのファンダメンタルズを返します。
	GetQuoteSummary(ctx context.Context, symbol string, modules []string) (*entity.QuoteSummary, error)
	// Search はフリーテキストで銘柄候補を検索します。
	Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchQuote, error)
	// GetHistorical は時系列の価格データを返します。
	GetHistorical(ctx context.Context, symbol string, opts entity.HistoricalOptions) ([]entity.Candle, error)
}
