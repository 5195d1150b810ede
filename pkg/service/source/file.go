// Package source provides RecordSource implementations for the backing
// users document: a local file reader for server deployments and an HTTP
// fetcher for setups where the document is served by another host.
package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
)

type fileSource struct {
	path string
}

// NewFile creates a RecordSource that reads the users document from a local
// JSON file on every Load.
func NewFile(path string) (interfaces.RecordSource, error) {
	if path == "" {
		return nil, goerr.New("users file path is required")
	}
	return &fileSource{path: path}, nil
}

func (s *fileSource) Load(ctx context.Context) ([]*model.User, error) {
	// #nosec G304 -- path comes from a CLI flag, not user input
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read users file", goerr.V("path", s.path))
	}

	var users []*model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, goerr.Wrap(err, "failed to parse users file", goerr.V("path", s.path))
	}

	return users, nil
}
