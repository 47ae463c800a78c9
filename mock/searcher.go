package mock

import (
	"context"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of vehiclecomp.Searcher.
type Searcher struct {
	SearchAllFn func(ctx context.Context, query string, sources []vehiclecomp.Source) ([]vehiclecomp.Listing, error)
	CompareFn   func(ctx context.Context, queries []string) (*vehiclecomp.ComparisonResult, error)
}

func (s *Searcher) SearchAll(ctx context.Context, query string, sources []vehiclecomp.Source) ([]vehiclecomp.Listing, error) {
	return s.SearchAllFn(ctx, query, sources)
}

func (s *Searcher) Compare(ctx context.Context, queries []string) (*vehiclecomp.ComparisonResult, error) {
	return s.CompareFn(ctx, queries)
}
