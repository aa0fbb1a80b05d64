package heritagegraph

import (
	"net/http"
	"time"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	endpoint         string
	httpClient       *http.Client
	timeout          time.Duration
	readinessTimeout time.Duration
	locale           string

	esAddresses []string
	esIndex     string
	esUsername  string
	esPassword  string
	esAPIKey    string
}

// WithSPARQLEndpoint sets the SPARQL query endpoint of the triple store.
func WithSPARQLEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for the triple store.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each triple store request. Ignored with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithReadinessTimeout bounds how long New waits for the collaborators.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}

// WithLocale sets the locale used when a call passes an empty one.
func WithLocale(locale string) Option {
	return func(c *clientConfig) {
		c.locale = locale
	}
}

// WithElasticsearch enables search against index on the given cluster.
func WithElasticsearch(index string, addresses ...string) Option {
	return func(c *clientConfig) {
		c.esIndex = index
		c.esAddresses = addresses
	}
}

// WithElasticsearchBasicAuth sets cluster credentials.
func WithElasticsearchBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.esUsername = username
		c.esPassword = password
	}
}

// WithElasticsearchAPIKey sets a cluster API key.
func WithElasticsearchAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.esAPIKey = key
	}
}
