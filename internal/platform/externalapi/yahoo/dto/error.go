// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// APIError is the error object embedded in most Yahoo responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Message returns a readable description of e, or "" when e is nil.
func (e *APIError) Message() string {
	if e == nil {
		return ""
	}
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

// RawValue is the {"raw": 1.5, "fmt": "1.50"} wrapper used by quoteSummary.
// Missing values are sent as {} so Raw stays nil.
type RawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt,omitempty"`
}

// Ptr returns the raw value, or nil when v is nil or empty.
func (v *RawValue) Ptr() *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}
