// Package handler はダッシュボード画面のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/feature/dashboard/view"
)

// Template names rendered by DashboardHandler.
const (
	IndexTemplate     = "index.html"
	StockCardTemplate = "stock_card.html"
)

// QuoteUsecase は銘柄スナップショット取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetStock(ctx context.Context, symbol string) (*entity.Stock, error)
}

// DashboardHandler はページ本体と銘柄カードのHTMLを返します。
type DashboardHandler struct {
	uc    QuoteUsecase
	tmpl  *template.Template
	title string
	loc   *time.Location
}

// NewDashboardHandler はDashboardHandlerの新しいインスタンスを生成します。
// locは最終更新時刻の表示に使うタイムゾーンで、nilの場合はUTCです。
func NewDashboardHandler(uc QuoteUsecase, tmpl *template.Template, title string, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{uc: uc, tmpl: tmpl, title: title, loc: loc}
}

// Index はダッシュボードのページ本体を返します。
//
// エンドポイント例:
// GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, IndexTemplate, view.NewPage(h.title))
}

// StockCard は銘柄カードのHTML断片を返します。
//
// エンドポイント例:
// GET /ui/stock-card?symbol=AAPL
func (h *DashboardHandler) StockCard(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		h.render(c, http.StatusBadRequest, StockCardTemplate, view.CardFragment{Error: "Stock symbol is required"})
		return
	}

	stock, err := h.uc.GetStock(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch stock data", "symbol", symbol, "error", err)
		h.render(c, http.StatusInternalServerError, StockCardTemplate, view.CardFragment{Error: "Failed to fetch stock data"})
		return
	}

	card := view.NewStockCard(stock, h.loc)
	h.render(c, http.StatusOK, StockCardTemplate, view.CardFragment{Card: &card})
}

func (h *DashboardHandler) render(c *gin.Context, code int, name string, data any) {
	c.Render(code, render.HTML{Template: h.tmpl, Name: name, Data: data})
}
