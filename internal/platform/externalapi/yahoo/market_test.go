package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/biggame27/stock-checker/internal/domain/entity"
)

// newTestServer serves the crumb endpoint plus the given handlers.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/test/getcrumb", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("test-crumb"))
	})
	for p, h := range routes {
		mux.HandleFunc(p, h)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestMarket(server *httptest.Server) *YahooMarket {
	return NewYahooMarket(Config{BaseURL: server.URL}, server.Client())
}

func TestNewYahooMarket_Defaults(t *testing.T) {
	t.Parallel()

	market := NewYahooMarket(Config{}, &http.Client{})

	if market.cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultBaseURL, market.cfg.BaseURL)
	}
	if market.cfg.UserAgent != DefaultUserAgent {
		t.Errorf("expected default user agent, got %q", market.cfg.UserAgent)
	}
	if market.cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, market.cfg.Timeout)
	}
	if market.cfg.CookieURL != "" {
		t.Errorf("expected cookie URL to stay empty, got %q", market.cfg.CookieURL)
	}
}

func TestYahooMarket_GetQuote_Success(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v7/finance/quote": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("symbols") != "AAPL" {
				t.Errorf("expected symbols AAPL, got %s", r.URL.Query().Get("symbols"))
			}
			if r.URL.Query().Get("crumb") != "test-crumb" {
				t.Errorf("expected crumb test-crumb, got %s", r.URL.Query().Get("crumb"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{
				"symbol":"AAPL","shortName":"Apple Inc.","longName":"Apple Inc.",
				"regularMarketPrice":190.5,"regularMarketChange":-1.25,"regularMarketChangePercent":-0.65,
				"regularMarketTime":1700000000,"regularMarketVolume":51234567,
				"regularMarketDayHigh":192.1,"regularMarketDayLow":189.3,
				"currency":"USD","exchange":"NMS"}],"error":null}}`))
		},
	})

	q, err := newTestMarket(server).GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entity.Quote{
		Symbol: "AAPL", ShortName: "Apple Inc.", LongName: "Apple Inc.",
		RegularMarketPrice: 190.5, RegularMarketChange: -1.25, RegularMarketChangePercent: -0.65,
		RegularMarketTime: 1700000000, RegularMarketVolume: 51234567,
		RegularMarketDayHigh: 192.1, RegularMarketDayLow: 189.3,
		Currency: "USD", Exchange: "NMS",
	}
	if *q != want {
		t.Errorf("unexpected quote:\n got %+v\nwant %+v", *q, want)
	}
}

func TestYahooMarket_GetQuote_NotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v7/finance/quote": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
		},
	})

	_, err := newTestMarket(server).GetQuote(context.Background(), "NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestYahooMarket_CrumbIsCached(t *testing.T) {
	t.Parallel()

	var crumbCalls, cookieCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/cookie", func(w http.ResponseWriter, r *http.Request) {
		cookieCalls.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "A3", Value: "session", Path: "/"})
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/v1/test/getcrumb", func(w http.ResponseWriter, r *http.Request) {
		crumbCalls.Add(1)
		_, _ = w.Write([]byte("abc"))
	})
	mux.HandleFunc("/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"MSFT"}]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL, CookieURL: server.URL + "/cookie"}, server.Client())

	for i := 0; i < 3; i++ {
		if _, err := market.GetQuote(context.Background(), "MSFT"); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if got := cookieCalls.Load(); got != 1 {
		t.Errorf("expected 1 cookie call, got %d", got)
	}
	if got := crumbCalls.Load(); got != 1 {
		t.Errorf("expected 1 crumb call, got %d", got)
	}
}

func TestYahooMarket_CrumbResetOnUnauthorized(t *testing.T) {
	t.Parallel()

	var crumbCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/test/getcrumb", func(w http.ResponseWriter, r *http.Request) {
		crumbCalls.Add(1)
		_, _ = w.Write([]byte("abc"))
	})
	mux.HandleFunc("/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"finance":{"result":null,"error":{"code":"Unauthorized","description":"Invalid Crumb"}}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetQuote(context.Background(), "AAPL")
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
	_, _ = market.GetQuote(context.Background(), "AAPL")

	if got := crumbCalls.Load(); got != 2 {
		t.Errorf("expected crumb to be fetched again after 401, got %d calls", got)
	}
}

func TestYahooMarket_InvalidCrumb(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/test/getcrumb", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>consent</html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestMarket(server).GetQuote(context.Background(), "AAPL")
	if !errors.Is(err, ErrInvalidCrumb) {
		t.Fatalf("expected ErrInvalidCrumb, got %v", err)
	}
}

func TestYahooMarket_GetQuoteSummary_Success(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v10/finance/quoteSummary/AAPL": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("modules"); got != "summaryDetail,defaultKeyStatistics" {
				t.Errorf("unexpected modules %q", got)
			}
			_, _ = w.Write([]byte(`{"quoteSummary":{"result":[{
				"summaryDetail":{"averageVolume":{"raw":55000000,"fmt":"55M"},"fiftyTwoWeekHigh":{"raw":199.62},
					"fiftyTwoWeekLow":{"raw":164.08},"dividendYield":{},"trailingPE":{"raw":31.2}},
				"defaultKeyStatistics":{"forwardPE":{"raw":28.4},"trailingEps":{"raw":6.13}}
			}],"error":null}}`))
		},
	})

	s, err := newTestMarket(server).GetQuoteSummary(context.Background(), "AAPL",
		[]string{entity.ModuleSummaryDetail, entity.ModuleDefaultKeyStatistics})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Price != nil || s.FinancialData != nil {
		t.Errorf("expected unreturned modules to be nil, got %+v", s)
	}
	if s.SummaryDetail == nil || s.SummaryDetail.AverageVolume == nil || *s.SummaryDetail.AverageVolume != 55000000 {
		t.Errorf("unexpected summaryDetail: %+v", s.SummaryDetail)
	}
	if s.SummaryDetail.DividendYield != nil {
		t.Errorf("expected empty dividendYield to be nil, got %v", *s.SummaryDetail.DividendYield)
	}
	if s.DefaultKeyStatistics == nil || *s.DefaultKeyStatistics.TrailingEps != 6.13 {
		t.Errorf("unexpected defaultKeyStatistics: %+v", s.DefaultKeyStatistics)
	}
	if s.DefaultKeyStatistics.MarketCap != nil {
		t.Error("expected missing marketCap to be nil")
	}
}

func TestYahooMarket_GetQuoteSummary_APIError(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v10/finance/quoteSummary/ZZZZ": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found for symbol: ZZZZ"}}}`))
		},
	})

	_, err := newTestMarket(server).GetQuoteSummary(context.Background(), "ZZZZ", []string{entity.ModulePrice})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Quote not found for symbol: ZZZZ") {
		t.Errorf("expected Yahoo description in error, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Errorf("expected wrapped 404 StatusError, got %v", err)
	}
}

func TestYahooMarket_Search_Success(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v1/finance/search": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("q") != "apple" || q.Get("quotesCount") != "10" || q.Get("newsCount") != "0" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			if q.Get("crumb") != "" {
				t.Error("search should not send a crumb")
			}
			_, _ = w.Write([]byte(`{"quotes":[
				{"symbol":"AAPL","shortname":"Apple Inc.","longname":"Apple Inc.","exchange":"NMS","quoteType":"EQUITY","typeDisp":"Equity"},
				{"symbol":"APLE","shortname":"Apple Hospitality REIT, Inc.","exchange":"NYQ","quoteType":"EQUITY","typeDisp":"Equity"}
			],"news":[]}`))
		},
	})

	got, err := newTestMarket(server).Search(context.Background(), "apple", entity.SearchOptions{QuotesCount: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(got))
	}
	if got[0].Symbol != "AAPL" || got[0].TypeDisp != "Equity" || got[1].LongName != "" {
		t.Errorf("unexpected results: %+v", got)
	}
}

func TestYahooMarket_GetHistorical_Params(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		opts entity.HistoricalOptions
		want map[string]string
	}{
		{
			name: "date range",
			opts: entity.HistoricalOptions{Period1: start, Period2: end, Interval: "1d"},
			want: map[string]string{"period1": "1735689600", "period2": "1738281600", "interval": "1d", "range": ""},
		},
		{
			name: "range keyword",
			opts: entity.HistoricalOptions{Range: "5d", Interval: "15m"},
			want: map[string]string{"period1": "", "range": "5d", "interval": "15m"},
		},
		{
			name: "provider defaults",
			opts: entity.HistoricalOptions{},
			want: map[string]string{"period1": "", "period2": "", "range": "", "interval": ""},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, map[string]http.HandlerFunc{
				"/v8/finance/chart/AAPL": func(w http.ResponseWriter, r *http.Request) {
					for k, v := range tt.want {
						if got := r.URL.Query().Get(k); got != v {
							t.Errorf("param %s: expected %q, got %q", k, v, got)
						}
					}
					_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"AAPL"}}],"error":null}}`))
				},
			})

			candles, err := newTestMarket(server).GetHistorical(context.Background(), "AAPL", tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if candles == nil || len(candles) != 0 {
				t.Errorf("expected empty non-nil series, got %v", candles)
			}
		})
	}
}

func TestYahooMarket_GetHistorical_SkipsNullBars(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v8/finance/chart/AAPL": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":[{
				"meta":{"symbol":"AAPL","currency":"USD"},
				"timestamp":[1736899200,1736985600,1737072000],
				"indicators":{"quote":[{
					"open":[150.0,null,151.0],
					"high":[155.0,null,156.0],
					"low":[149.0,null,150.5],
					"close":[154.5,null,155.25],
					"volume":[1000000,null,null]
				}]}
			}],"error":null}}`))
		},
	})

	candles, err := newTestMarket(server).GetHistorical(context.Background(), "AAPL", entity.HistoricalOptions{Range: "1mo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	if !candles[0].Time.Equal(time.Unix(1736899200, 0)) || candles[0].Close != 154.5 || candles[0].Volume != 1000000 {
		t.Errorf("unexpected first candle: %+v", candles[0])
	}
	if candles[1].Open != 151.0 || candles[1].Volume != 0 {
		t.Errorf("unexpected second candle: %+v", candles[1])
	}
	if !candles[0].Time.Before(candles[1].Time) {
		t.Error("expected chronological order to be kept")
	}
}

func TestYahooMarket_GetHistorical_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"not found", http.StatusNotFound},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, map[string]http.HandlerFunc{
				"/v8/finance/chart/AAPL": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.statusCode)
				},
			})

			_, err := newTestMarket(server).GetHistorical(context.Background(), "AAPL", entity.HistoricalOptions{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "yahoo http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
		})
	}
}

func TestYahooMarket_GetHistorical_APIError(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v8/finance/chart/BAD": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid input - interval=5m is not supported"}}}`))
		},
	})

	_, err := newTestMarket(server).GetHistorical(context.Background(), "BAD", entity.HistoricalOptions{Interval: "5m"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "interval=5m is not supported") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestYahooMarket_GetHistorical_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v8/finance/chart/AAPL": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{invalid json`))
		},
	})

	_, err := newTestMarket(server).GetHistorical(context.Background(), "AAPL", entity.HistoricalOptions{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestYahooMarket_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/v1/finance/search": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"quotes":[]}`))
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestMarket(server).Search(ctx, "apple", entity.SearchOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
