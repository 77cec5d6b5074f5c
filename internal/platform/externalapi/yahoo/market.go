package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/biggame27/stock-checker/internal/domain/repository"
)

// maxErrorBody caps how much of an error response is kept in StatusError.Body.
const maxErrorBody = 512

// YahooMarket はYahoo Finance APIから株価データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client

	// crumb is the token Yahoo requires on quote endpoints; mu guards it.
	mu    sync.Mutex
	crumb string
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ repository.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
// client should carry a cookie jar, otherwise the crumb handshake cannot succeed against Yahoo.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg.WithDefaults(), client: client}
}

// getJSON issues a GET to path and decodes the JSON body into out.
// For 4xx/5xx responses the body is still decoded into out when possible so
// callers can surface Yahoo's own error description, and a *StatusError is returned.
func (m *YahooMarket) getJSON(ctx context.Context, path string, q url.Values, withCrumb bool, out any) error {
	if q == nil {
		q = url.Values{}
	}
	if withCrumb {
		crumb, err := m.getCrumb(ctx)
		if err != nil {
			return err
		}
		q.Set("crumb", crumb)
	}

	u := m.cfg.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if res.StatusCode >= 400 {
		if res.StatusCode == http.StatusUnauthorized && withCrumb {
			// crumb expired with its cookie; the next call fetches a new one
			m.resetCrumb()
		}
		_ = json.Unmarshal(body, out)
		return &StatusError{StatusCode: res.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// getCrumb returns the cached crumb, performing the cookie and crumb handshake on first use.
func (m *YahooMarket) getCrumb(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.crumb != "" {
		return m.crumb, nil
	}

	if m.cfg.CookieURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.CookieURL, nil)
		if err != nil {
			return "", err
		}
		res, err := m.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("yahoo cookie: %w", err)
		}
		// fc.yahoo.com answers 404 but still sets the session cookie, so the status is ignored
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.BaseURL+"/v1/test/getcrumb", nil)
	if err != nil {
		return "", err
	}
	res, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("yahoo crumb: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil {
		return "", fmt.Errorf("yahoo crumb: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("yahoo crumb: %w", &StatusError{StatusCode: res.StatusCode, Body: string(b)})
	}

	crumb := strings.TrimSpace(string(b))
	if crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", ErrInvalidCrumb
	}

	slog.Debug("yahoo crumb acquired")
	m.crumb = crumb
	return crumb, nil
}

func (m *YahooMarket) resetCrumb() {
	m.mu.Lock()
	m.crumb = ""
	m.mu.Unlock()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
