package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"

	"github.com/weaveworks/shopctl/pkg/client"
)

// DefaultBaseURL is the storefront API root.
const DefaultBaseURL = "https://peterka.netlify.app/api"

// HTTPClient defines an http client which then can be used to test the
// catalog code.
//
//go:generate counterfeiter -o fakes/fake_http_client.go . HTTPClient
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	HTTPClient HTTPClient
	Logger     *zerolog.Logger
}

// Client issues typed GET requests against the storefront API. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient HTTPClient
	logger     zerolog.Logger
}

// New creates a Client from the supplied options.
func New(options Options) (*Client, error) {
	raw := options.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL:    u,
		httpClient: options.HTTPClient,
		logger:     zerolog.Nop(),
	}
	if c.httpClient == nil {
		c.httpClient = client.New(client.Options{})
	}
	if options.Logger != nil {
		c.logger = *options.Logger
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint builds the URL for an API path. rawQuery must already be encoded.
func (c *Client) endpoint(path, rawQuery string) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + path
	u.RawPath = ""
	u.RawQuery = rawQuery
	return u.String()
}

// get performs the request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := client.NewGetRequest(ctx, endpoint)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	requestID := req.Header.Get(client.RequestIDHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("url", endpoint).Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", endpoint).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: errors.Wrap(err, "read body")}
	}
	return body, nil
}

// fetch returns the envelope of a successful call. An envelope with success
// set to false becomes a RemoteError using fallback when it carries no error.
func (c *Client) fetch(ctx context.Context, path, rawQuery, fallback string) (envelope, error) {
	body, err := c.get(ctx, c.endpoint(path, rawQuery))
	if err != nil {
		return envelope{}, err
	}
	env, err := parseEnvelope(body)
	if err != nil {
		return envelope{}, err
	}
	if !*env.Success {
		return envelope{}, env.remoteError(fallback)
	}
	return env, nil
}

func fetchList[T record](ctx context.Context, c *Client, path, rawQuery string, decode func(fields) (T, error)) (Batch[T], error) {
	env, err := c.fetch(ctx, path, rawQuery, DefaultRemoteMessage)
	if err != nil {
		return Batch[T]{}, err
	}
	raw, err := env.records()
	if err != nil {
		return Batch[T]{}, err
	}

	batch := decodeBatch(raw, decode)
	for _, d := range batch.Diagnostics {
		c.logger.Warn().
			Str("endpoint", path).
			Int("index", d.Index).
			Str("id", d.ID).
			Str("reason", d.Reason).
			Msg("skipping malformed record")
	}
	return batch, nil
}
