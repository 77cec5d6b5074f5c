// Package router はHTTPルーティングを組み立てます。
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/biggame27/stock-checker/internal/app/di"
	platformhandler "github.com/biggame27/stock-checker/internal/platform/http/handler"
	"github.com/biggame27/stock-checker/web"
)

// ServiceName is reported by /healthz.
const ServiceName = "stock-checker"

// NewRouter はAPI・ダッシュボード・ヘルスチェックのルートを登録したginエンジンを返します。
// corsOriginsが "*" を含む場合はすべてのオリジンを許可します。
func NewRouter(h *di.Handlers, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	health := platformhandler.NewHealth(ServiceName)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// JSON API
	api := r.Group("/api")
	api.Use(cors.New(corsConfig(corsOrigins)))
	{
		api.GET("/stock", h.Quote.GetStock)
		api.GET("/search", h.Search.Search)
		api.GET("/historical", h.Historical.GetHistorical)
	}

	// ダッシュボード
	r.GET("/", h.Dashboard.Index)
	r.GET("/ui/stock-card", h.Dashboard.StockCard)
	r.StaticFS("/static", http.FS(web.Static()))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
