package yahoo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when Yahoo answers successfully but without any result,
// which is how unknown symbols are reported.
var ErrNotFound = errors.New("yahoo: no data found")

// ErrInvalidCrumb is returned when the crumb endpoint answers with something other than a token.
var ErrInvalidCrumb = errors.New("yahoo: invalid crumb")

// StatusError is returned for HTTP responses with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	Body       string // First bytes of the response body
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("yahoo http %d", e.StatusCode)
}
