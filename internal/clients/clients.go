// Package clients talks to the question search and code execution services.
package clients

import (
	"errors"
	"net/http"
	"time"
)

// ErrUpstreamStatus is wrapped when a service answers with a non-2xx status.
var ErrUpstreamStatus = errors.New("unexpected upstream status")

// NewHTTPClient returns the client shared by both services. A zero timeout
// waits for the upstream indefinitely.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
