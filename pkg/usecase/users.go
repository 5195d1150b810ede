package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/utils/logging"
)

// Department summarizes one department of the directory for the filter UI.
type Department struct {
	Name    string
	Color   model.Color
	Members int
}

// ListUsers returns every directory record without enrichment.
func (uc *UseCases) ListUsers(ctx context.Context) ([]*model.User, types.Freshness) {
	return uc.store.LoadAll(ctx)
}

// GetUser returns the base record for an ID, or nil when absent.
func (uc *UseCases) GetUser(ctx context.Context, id types.UserID) (*model.User, types.Freshness) {
	return uc.store.LoadOne(ctx, id)
}

// GetFullUser returns the record for an ID with profile fields merged in.
// Records without an email are returned unchanged with no external call.
// Enrichment failures degrade to the base record; the method never fails for
// reasons other than an absent ID, which yields nil.
func (uc *UseCases) GetFullUser(ctx context.Context, id types.UserID) (*model.User, types.Freshness) {
	user, freshness := uc.store.LoadOne(ctx, id)
	if user == nil {
		return nil, freshness
	}

	return uc.enrichOne(ctx, user), freshness
}

// ListFullUsers returns every record with profile fields merged in. Lookups
// run concurrently with a bounded limit; each record degrades independently.
func (uc *UseCases) ListFullUsers(ctx context.Context) ([]*model.User, types.Freshness) {
	users, freshness := uc.store.LoadAll(ctx)
	if uc.enricher == nil || len(users) == 0 {
		return users, freshness
	}

	merged := make([]*model.User, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.enrichLimit)
	for i, user := range users {
		g.Go(func() error {
			merged[i] = uc.enrichOne(gctx, user)
			return nil
		})
	}
	// workers never return errors; enrichment degrades per record
	_ = g.Wait()

	return merged, freshness
}

// Departments returns the unique departments of the directory with resolved
// colors, sorted by name.
func (uc *UseCases) Departments(ctx context.Context) ([]Department, types.Freshness) {
	users, freshness := uc.store.LoadAll(ctx)

	counts := make(map[string]int)
	for _, u := range users {
		if u.JobTitle == "" {
			continue
		}
		counts[u.JobTitle]++
	}

	departments := make([]Department, 0, len(counts))
	for name, members := range counts {
		departments = append(departments, Department{
			Name:    name,
			Color:   uc.colors.Resolve(name),
			Members: members,
		})
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})

	return departments, freshness
}

func (uc *UseCases) enrichOne(ctx context.Context, user *model.User) *model.User {
	if uc.enricher == nil || user.Email == "" {
		return user
	}

	profile, freshness := uc.enricher.Enrich(ctx, user.Email)
	if freshness.Degraded() {
		logging.From(ctx).Debug("profile enrichment degraded",
			"uid", user.ID, "freshness", freshness)
	}

	return user.Merge(profile)
}
