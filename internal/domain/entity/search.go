package entity

// SearchOptions limits the size of a provider search.
type SearchOptions struct {
	QuotesCount int
	NewsCount   int
}

// SearchQuote is one quote suggestion returned by a provider search,
// in the order the provider ranked it.
type SearchQuote struct {
	Symbol    string
	ShortName string
	LongName  string
	Exchange  string
	QuoteType string
	TypeDisp  string
}
