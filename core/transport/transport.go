package transport

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns an HTTP client with strict connection and response
// timeouts for marketplace and feed endpoints.
func NewHTTPClient(timeoutSeconds int) *http.Client {
	// Ensure timeout defaults if not set
	timeout := timeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	return &http.Client{
		Timeout: timeoutDuration,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   timeoutDuration, // Connection setup timeout
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   timeoutDuration,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
		},
	}
}

// APIError describes a non-2xx response from an external API. Batches
// already pushed before the failing call stay applied on the remote side;
// the caller aborts the remaining steps for that marketplace only.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Path is the request path that failed.
	Path string
	// Body is a truncated copy of the response body, for diagnostics.
	Body string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.Status, e.Body)
}
