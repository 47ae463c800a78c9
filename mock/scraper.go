package mock

import (
	"context"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of vehiclecomp.Scraper.
type Scraper struct {
	SourceFn func() vehiclecomp.Source
	SearchFn func(ctx context.Context, query string) ([]vehiclecomp.Listing, error)
}

func (s *Scraper) Source() vehiclecomp.Source {
	return s.SourceFn()
}

func (s *Scraper) Search(ctx context.Context, query string) ([]vehiclecomp.Listing, error) {
	return s.SearchFn(ctx, query)
}
