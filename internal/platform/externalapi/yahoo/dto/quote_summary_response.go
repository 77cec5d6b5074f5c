package dto

// QuoteSummaryResponse represents the JSON response from the /v10/finance/quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult carries one entry per requested module; unrequested modules are nil.
type QuoteSummaryResult struct {
	Price *struct {
		MarketCap *RawValue `json:"marketCap"`
		Currency  string    `json:"currency"`
	} `json:"price"`
	SummaryDetail *struct {
		AverageVolume    *RawValue `json:"averageVolume"`
		FiftyTwoWeekHigh *RawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  *RawValue `json:"fiftyTwoWeekLow"`
		DividendYield    *RawValue `json:"dividendYield"`
		MarketCap        *RawValue `json:"marketCap"`
		TrailingPE       *RawValue `json:"trailingPE"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics *struct {
		MarketCap   *RawValue `json:"marketCap"`
		TrailingPE  *RawValue `json:"trailingPE"`
		ForwardPE   *RawValue `json:"forwardPE"`
		TrailingEps *RawValue `json:"trailingEps"`
	} `json:"defaultKeyStatistics"`
	FinancialData *struct {
		CurrentPrice      *RawValue `json:"currentPrice"`
		TargetMeanPrice   *RawValue `json:"targetMeanPrice"`
		RecommendationKey string    `json:"recommendationKey"`
	} `json:"financialData"`
}
