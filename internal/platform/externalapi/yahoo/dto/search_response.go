package dto

// SearchResponse represents the JSON response from the /v1/finance/search endpoint.
type SearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
		TypeDisp  string `json:"typeDisp"`
	} `json:"quotes"`
	Finance *struct {
		Error *APIError `json:"error"`
	} `json:"finance,omitempty"`
}
