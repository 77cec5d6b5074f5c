// Package yahoo provides a client for the Yahoo Finance market data API.
package yahoo

import "time"

const (
	// DefaultBaseURL is the host serving the quote, summary, search and chart endpoints.
	DefaultBaseURL = "https://query2.finance.yahoo.com"
	// DefaultCookieURL hands out the session cookie required before a crumb can be issued.
	DefaultCookieURL = "https://fc.yahoo.com"
	// DefaultUserAgent mimics a browser; Yahoo rejects requests with Go's default agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	// DefaultTimeout bounds a single HTTP request to Yahoo.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        // API base URL (e.g., "https://query2.finance.yahoo.com")
	CookieURL string        // URL visited once to obtain the session cookie; empty skips the visit
	UserAgent string        // User-Agent sent with every request
	Timeout   time.Duration // HTTP request timeout
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
// CookieURL is kept as is so that tests can disable the cookie visit.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
