// Package gravatar implements the profile enrichment service: a client for
// the Gravatar profile API, a deterministic avatar URL builder, and a
// caching enricher with stale-fallback semantics.
package gravatar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
	"github.com/orgdir-lab/orgdir/pkg/utils/safe"
)

const (
	// DefaultBaseURL is the public Gravatar endpoint
	DefaultBaseURL = "https://www.gravatar.com"

	// DefaultTimeout bounds a single profile lookup. On expiry the
	// in-flight request is cancelled through its context, not abandoned.
	DefaultTimeout = 3 * time.Second
)

// Client fetches profile documents from the Gravatar API.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

var _ interfaces.ProfileFetcher = &Client{}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL overrides the Gravatar endpoint (for tests and mirrors)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the per-lookup timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

// NewClient creates a Gravatar API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProfile retrieves the profile document for an email address and
// returns its bio and thumbnail fields. Fields absent from the document
// default to empty strings.
func (c *Client) FetchProfile(ctx context.Context, email string) (*model.Profile, error) {
	hash := emailhash.Fingerprint(email)
	url := fmt.Sprintf("%s/%s.json", c.baseURL, hash)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build profile request", goerr.V("hash", hash))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch profile", goerr.V("hash", hash))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status from profile service",
			goerr.V("hash", hash), goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile response", goerr.V("hash", hash))
	}

	var doc profileResponse
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profile response", goerr.V("hash", hash))
	}

	profile := &model.Profile{}
	if len(doc.Entry) > 0 {
		profile.AboutMe = doc.Entry[0].AboutMe
		profile.ThumbnailURL = doc.Entry[0].ThumbnailURL
	}

	return profile, nil
}
