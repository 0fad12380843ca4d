package sdbhttp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"sdb-client/internal/platform/validate"
	"sdb-client/internal/ports"
)

var _ ports.Backend = (*Client)(nil)

// Client implements ports.Backend against the SDB REST API.
//
// It owns:
//   - request validation before anything is sent
//   - JSON encoding/decoding and a schema check of every response
//   - mapping of envelope statuses onto domain.DomainError
//
// There are no retries and no client-side timeout; callers bound calls with
// their context. The client is safe for concurrent use.
type Client struct {
	session  *http.Client
	baseURL  string
	validate *validator.Validate
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client, e.g. with httptest's.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.session = hc
		}
	}
}

// NewClient returns a client for baseURL, e.g. https://host/api/v1.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("sdb client: base url is empty")
	}

	c := &Client{
		session:  &http.Client{},
		baseURL:  baseURL,
		validate: validate.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the backend base the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) checkRequest(req any) error {
	if err := c.validate.Struct(req); err != nil {
		return validate.ToValidationError(err)
	}
	return nil
}
