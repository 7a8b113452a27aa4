package datex

import "fmt"

// StatusCodeError is returned when the publication server responds
// with an unexpected status code.
type StatusCodeError struct {
	StatusCode int
	URL        string
}

func (s *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code (StatusCode: %d, URL: %s)", s.StatusCode, s.URL)
}
