// Package usecase は銘柄検索のビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// MaxResults は1回の検索で返す候補の上限です。
const MaxResults = 10

// MarketRepository は銘柄検索を行う外部APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchQuote, error)
}

// SearchUsecase は銘柄検索のユースケースを定義します。
type SearchUsecase struct {
	market MarketRepository
}

// NewSearchUsecase はSearchUsecaseの新しいインスタンスを生成します。
func NewSearchUsecase(market MarketRepository) *SearchUsecase {
	return &SearchUsecase{market: market}
}

// Search はクエリに一致する銘柄候補をプロバイダの関連度順に返します。
// シンボルまたは短縮名のない候補は除外し、最大MaxResults件に切り詰めます。
func (u *SearchUsecase) Search(ctx context.Context, query string) ([]entity.SearchQuote, error) {
	quotes, err := u.market.Search(ctx, query, entity.SearchOptions{QuotesCount: MaxResults, NewsCount: 0})
	if err != nil {
		return nil, err
	}

	out := make([]entity.SearchQuote, 0, min(len(quotes), MaxResults))
	for _, q := range quotes {
		if q.Symbol == "" || q.ShortName == "" {
			continue
		}
		out = append(out, q)
		if len(out) == MaxResults {
			break
		}
	}
	return out, nil
}
