// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
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

// QuoteUsecase は銘柄スナップショット取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetStock(ctx context.Context, symbol string) (*entity.Stock, error)
}

// QuoteHandler は銘柄スナップショットのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetStock は銘柄コードを受け取り、クォートと企業指標を平坦化したJSONを返します。
//
// エンドポイント例:
// GET /api/stock?symbol=AAPL
func (h *QuoteHandler) GetStock(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Stock symbol is required"})
		return
	}

	stock, err := h.uc.GetStock(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch stock data", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch stock data"})
		return
	}

	c.JSON(http.StatusOK, ToStockResponse(stock))
}

// ToStockResponse はエンティティをAPIレスポンス形式に変換します。
func ToStockResponse(s *entity.Stock) api.StockResponse {
	return api.StockResponse{
		Symbol:                     s.Symbol,
		ShortName:                  s.ShortName,
		LongName:                   s.LongName,
		RegularMarketPrice:         s.RegularMarketPrice,
		RegularMarketChange:        s.RegularMarketChange,
		RegularMarketChangePercent: s.RegularMarketChangePercent,
		RegularMarketTime:          s.RegularMarketTime,
		MarketCap:                  s.MarketCap,
		Volume:                     s.Volume,
		AverageVolume:              s.AverageVolume,
		DayHigh:                    s.DayHigh,
		DayLow:                     s.DayLow,
		FiftyTwoWeekHigh:           s.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:            s.FiftyTwoWeekLow,
		PERatio:                    s.PERatio,
		ForwardPE:                  s.ForwardPE,
		EPS:                        s.EPS,
		DividendYield:              s.DividendYield,
		Currency:                   s.Currency,
		Exchange:                   s.Exchange,
	}
}
