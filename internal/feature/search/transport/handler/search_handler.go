// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biggame27/stock-checker/internal/api"
	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// SearchUsecase は銘柄検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]entity.SearchQuote, error)
}

// SearchHandler は銘柄検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler は指定されたusecaseでSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search は検索語を受け取り、一致する銘柄候補をJSONで返します。
//
// エンドポイント例:
// GET /api/search?q=apple
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Search query is required"})
		return
	}

	quotes, err := h.uc.Search(c.Request.Context(), query)
	if err != nil {
		slog.Error("failed to search stocks", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to search stocks"})
		return
	}

	// nilではなく空配列を返す
	stocks := make([]api.StockSearchResult, 0, len(quotes))
	for _, q := range quotes {
		stocks = append(stocks, api.StockSearchResult{
			Symbol:    q.Symbol,
			ShortName: q.ShortName,
			LongName:  q.LongName,
			Exchange:  q.Exchange,
			Type:      q.TypeDisp,
		})
	}

	c.JSON(http.StatusOK, api.SearchResponse{Stocks: stocks})
}
