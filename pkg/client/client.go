package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/weaveworks/shopctl/pkg/version"
)

const (
	// DefaultConnectTimeout bounds dialing and the TLS handshake.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout bounds waiting for and reading the response.
	DefaultReadTimeout = 10 * time.Second

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"
	contentTypeJSON = "application/json"
)

// Options holds transport settings for talking to the storefront API.
type Options struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

func (o Options) withDefaults() Options {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = DefaultReadTimeout
	}
	return o
}

// New creates an http.Client whose connect and read phases are each bounded
// by their own timeout. The overall client timeout is their sum.
func New(options Options) *http.Client {
	o := options.withDefaults()
	dialer := &net.Dialer{
		Timeout:   o.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   o.ConnectTimeout,
		ResponseHeaderTimeout: o.ReadTimeout,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   o.ConnectTimeout + o.ReadTimeout,
	}
}

// NewGetRequest builds a JSON GET request for rawURL with the shopctl user
// agent and a fresh request id.
func NewGetRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", rawURL, err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}
