package mock

import vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"

var _ vehiclecomp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vehiclecomp.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]vehiclecomp.RawListing, error)
}

func (e *Extractor) Extract(html string) ([]vehiclecomp.RawListing, error) {
	return e.ExtractFn(html)
}
