// Package handler はhistoricalフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/biggame27/stock-checker/internal/api"
	"github.com/biggame27/stock-checker/internal/feature/historical/domain"
	"github.com/biggame27/stock-checker/internal/feature/historical/usecase"
)

// HistoricalUsecase は時系列データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoricalUsecase interface {
	GetHistorical(ctx context.Context, symbol string, period domain.Period) (*usecase.Series, error)
}

// HistoricalHandler は時系列データのHTTPリクエストを処理します。
type HistoricalHandler struct {
	uc HistoricalUsecase
}

// NewHistoricalHandler は指定されたusecaseでHistoricalHandlerの新しいインスタンスを生成します。
func NewHistoricalHandler(uc HistoricalUsecase) *HistoricalHandler {
	return &HistoricalHandler{uc: uc}
}

// GetHistorical は銘柄コードと期間を受け取り、チャート用の時系列データをJSONで返します。
//
// エンドポイント例:
// GET /api/historical?symbol=AAPL&period=3mo
func (h *HistoricalHandler) GetHistorical(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Stock symbol is required"})
		return
	}

	// 未指定の場合はデフォルト値を使用
	periodStr := strings.TrimSpace(c.Query("period"))
	if periodStr == "" {
		periodStr = string(domain.DefaultPeriod)
	}
	period, ok := domain.ParsePeriod(periodStr)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: "Invalid period. Valid periods: " + domain.ValidPeriodsList(),
		})
		return
	}

	series, err := h.uc.GetHistorical(c.Request.Context(), symbol, period)
	if err != nil {
		slog.Error("failed to fetch historical data", "symbol", symbol, "period", string(period), "error", err)
		c.JSON(http.StatusInternalServerError, api.HistoricalErrorResponse{
			Error:   "Failed to fetch historical data",
			Details: err.Error(),
			Symbol:  symbol,
			Period:  string(period),
		})
		return
	}

	c.JSON(http.StatusOK, toHistoricalResponse(series))
}

func toHistoricalResponse(s *usecase.Series) api.HistoricalResponse {
	data := make([]api.HistoricalPoint, 0, len(s.Candles))
	for _, x := range s.Candles {
		data = append(data, api.HistoricalPoint{
			Date:   x.Time.UTC().Format(time.RFC3339),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}
	return api.HistoricalResponse{
		Symbol:        s.Symbol,
		Period:        string(s.Period),
		Data:          data,
		CurrentPrice:  s.CurrentPrice,
		Change:        s.Change,
		ChangePercent: s.ChangePercent,
	}
}
