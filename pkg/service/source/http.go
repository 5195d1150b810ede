package source

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/utils/safe"
)

type httpSource struct {
	url    string
	client *http.Client
}

// HTTPOption configures the HTTP record source
type HTTPOption func(*httpSource)

// WithHTTPClient replaces the underlying HTTP client (primarily for tests)
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *httpSource) {
		s.client = client
	}
}

// NewHTTP creates a RecordSource that fetches the users document over HTTP.
func NewHTTP(rawURL string, opts ...HTTPOption) (interfaces.RecordSource, error) {
	if rawURL == "" {
		return nil, goerr.New("users URL is required")
	}
	if _, err := url.Parse(rawURL); err != nil {
		return nil, goerr.Wrap(err, "invalid users URL", goerr.V("url", rawURL))
	}

	s := &httpSource{
		url: rawURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *httpSource) Load(ctx context.Context) ([]*model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build users request", goerr.V("url", s.url))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch users document", goerr.V("url", s.url))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status from users endpoint",
			goerr.V("url", s.url), goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read users response", goerr.V("url", s.url))
	}

	var users []*model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, goerr.Wrap(err, "failed to parse users response", goerr.V("url", s.url))
	}

	return users, nil
}
