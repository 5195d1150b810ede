package interfaces

import (
	"context"

	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
)

// RecordSource loads the full set of directory records from a backing
// document. Implementations exist for local files and HTTP endpoints; which
// one is used is decided at construction time, never by runtime environment
// sniffing.
type RecordSource interface {
	Load(ctx context.Context) ([]*model.User, error)
}

// UserStore serves directory records through a short-lived cache. It never
// returns an error: failures degrade to stale cache contents or an empty
// list, reported through the Freshness value.
type UserStore interface {
	// LoadAll returns every record in the directory.
	LoadAll(ctx context.Context) ([]*model.User, types.Freshness)

	// LoadOne returns the record with the given ID, or nil when absent.
	LoadOne(ctx context.Context, id types.UserID) (*model.User, types.Freshness)
}
