// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo"
	infrahttp "github.com/biggame27/stock-checker/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket(cfg yahoo.Config) *yahoo.YahooMarket {
	cfg = cfg.WithDefaults()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	return yahoo.NewYahooMarket(cfg, httpClient)
}
