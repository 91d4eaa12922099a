// Package http holds the outbound HTTP client shared by external API adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// NewHTTPClient returns a client for calls to external APIs such as Gemini.
//
// http.DefaultClient has no timeout, so adapters must not use it. The
// transport dials with a short timeout, keeps idle connections for reuse and
// honours HTTP_PROXY. A non-positive timeout uses 60s.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
