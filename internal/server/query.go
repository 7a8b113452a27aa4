package server

import (
	"fmt"
	"net/http"
	"strconv"
)

type QueryParameterError struct {
	Msg string
	error
}

func (p *QueryParameterError) ServerErrorResponse() (int, string) {
	return http.StatusBadRequest, p.Msg
}

// ParseLimit parses a limit query parameter, falling back to def when
// the parameter is absent.
//
// If parsing fails an error is returned as a QueryParameterError.
func ParseLimit(limitStr string, def int) (int, error) {
	if limitStr == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		qErr := &QueryParameterError{
			Msg:   "Invalid limit",
			error: fmt.Errorf("failed to parse limit %q: %v", limitStr, err),
		}
		return 0, qErr
	}

	return limit, nil
}
