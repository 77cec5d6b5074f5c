// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスボディです。
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewHealth はサービス名を返すヘルスチェックハンドラーを生成します。
// 上流のYahoo Financeには問い合わせず、プロセスが応答できることだけを示します。
func NewHealth(service string) gin.HandlerFunc {
	body := HealthResponse{Status: "ok", Service: service}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Header("Allow", "GET, HEAD, OPTIONS")
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
