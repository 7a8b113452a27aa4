package datex

import (
	"net/http"
	"time"
)

func defaultTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100
	return t
}

// defaultHTTP returns the client used when no HTTPDoer is injected.
// The publication server is occasionally unresponsive, so a request
// timeout keeps a run from stalling forever.
func defaultHTTP() *http.Client {
	return &http.Client{
		Transport: defaultTransport(),
		Timeout:   30 * time.Second,
	}
}
