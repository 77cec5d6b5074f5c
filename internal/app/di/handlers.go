package di

import (
	"fmt"
	"time"

	"github.com/biggame27/stock-checker/internal/domain/repository"
	dashboardhandler "github.com/biggame27/stock-checker/internal/feature/dashboard/transport/handler"
	historicalhandler "github.com/biggame27/stock-checker/internal/feature/historical/transport/handler"
	historicalusecase "github.com/biggame27/stock-checker/internal/feature/historical/usecase"
	quotehandler "github.com/biggame27/stock-checker/internal/feature/quote/transport/handler"
	quoteusecase "github.com/biggame27/stock-checker/internal/feature/quote/usecase"
	searchhandler "github.com/biggame27/stock-checker/internal/feature/search/transport/handler"
	searchusecase "github.com/biggame27/stock-checker/internal/feature/search/usecase"
	"github.com/biggame27/stock-checker/web"
)

// Handlers groups every HTTP handler served by the router.
type Handlers struct {
	Quote      *quotehandler.QuoteHandler
	Search     *searchhandler.SearchHandler
	Historical *historicalhandler.HistoricalHandler
	Dashboard  *dashboardhandler.DashboardHandler
}

// NewHandlers wires the usecases and handlers of every feature to market.
func NewHandlers(market repository.MarketRepository, title string, loc *time.Location) (*Handlers, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(market)
	searchUC := searchusecase.NewSearchUsecase(market)
	historicalUC := historicalusecase.NewHistoricalUsecase(market)

	// Handler
	return &Handlers{
		Quote:      quotehandler.NewQuoteHandler(quoteUC),
		Search:     searchhandler.NewSearchHandler(searchUC),
		Historical: historicalhandler.NewHistoricalHandler(historicalUC),
		Dashboard:  dashboardhandler.NewDashboardHandler(quoteUC, tmpl, title, loc),
	}, nil
}
