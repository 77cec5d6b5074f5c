package entity

// Quote summary module names understood by the provider.
const (
	ModulePrice                = "price"
	ModuleSummaryDetail        = "summaryDetail"
	ModuleDefaultKeyStatistics = "defaultKeyStatistics"
	ModuleFinancialData        = "financialData"
)

// QuoteSummary holds the fundamentals modules of a symbol.
// A module that was not requested, or not returned, is nil.
// Every numeric field is optional upstream and therefore a pointer.
type QuoteSummary struct {
	Price                *PriceModule
	SummaryDetail        *SummaryDetail
	DefaultKeyStatistics *KeyStatistics
	FinancialData        *FinancialData
}

// PriceModule is the "price" module.
type PriceModule struct {
	MarketCap *float64
	Currency  string
}

// SummaryDetail is the "summaryDetail" module.
type SummaryDetail struct {
	AverageVolume    *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	DividendYield    *float64
	MarketCap        *float64
	TrailingPE       *float64
}

// KeyStatistics is the "defaultKeyStatistics" module.
type KeyStatistics struct {
	MarketCap   *float64
	TrailingPE  *float64
	ForwardPE   *float64
	TrailingEps *float64
}

// FinancialData is the "financialData" module.
type FinancialData struct {
	CurrentPrice      *float64
	TargetMeanPrice   *float64
	RecommendationKey string
}
