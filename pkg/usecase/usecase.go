package usecase

import (
	"github.com/orgdir-lab/orgdir/pkg/domain/interfaces"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
)

// defaultEnrichLimit bounds concurrent profile lookups during bulk
// enrichment of the directory listing.
const defaultEnrichLimit = 8

type UseCases struct {
	store       interfaces.UserStore
	enricher    interfaces.ProfileEnricher
	colors      *model.ColorMap
	enrichLimit int
}

type Option func(*UseCases)

// WithEnricher enables profile enrichment. Without it, full-record queries
// return base records unchanged.
func WithEnricher(enricher interfaces.ProfileEnricher) Option {
	return func(uc *UseCases) {
		uc.enricher = enricher
	}
}

// WithColorMap overrides the department color table
func WithColorMap(colors *model.ColorMap) Option {
	return func(uc *UseCases) {
		uc.colors = colors
	}
}

// WithEnrichLimit overrides the bulk enrichment concurrency limit
func WithEnrichLimit(limit int) Option {
	return func(uc *UseCases) {
		if limit > 0 {
			uc.enrichLimit = limit
		}
	}
}

func New(store interfaces.UserStore, opts ...Option) *UseCases {
	uc := &UseCases{
		store:       store,
		colors:      model.DefaultColorMap(),
		enrichLimit: defaultEnrichLimit,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// ColorFor resolves a department name to its display color.
func (uc *UseCases) ColorFor(department string) model.Color {
	return uc.colors.Resolve(department)
}
