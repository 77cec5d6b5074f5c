// Package logger はlog/slogのロガーを設定から生成します。
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel は "debug", "info", "warn", "error" をslog.Levelに変換します。
// 認識できない値はInfoになります。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New はwに出力する構造化ロガーを生成します。
// formatが "json" の場合はJSON、それ以外はテキスト形式です。
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
