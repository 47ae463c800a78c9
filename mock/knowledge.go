package mock

import (
	"context"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService is a mock implementation of vehiclecomp.KnowledgeService.
type KnowledgeService struct {
	CreateEntryFn  func(ctx context.Context, entry *vehiclecomp.KnowledgeEntry) error
	FindEntriesFn  func(ctx context.Context, filter vehiclecomp.KnowledgeFilter) ([]*vehiclecomp.KnowledgeEntry, error)
	CountEntriesFn func(ctx context.Context) (int, error)
}

func (s *KnowledgeService) CreateEntry(ctx context.Context, entry *vehiclecomp.KnowledgeEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *KnowledgeService) FindEntries(ctx context.Context, filter vehiclecomp.KnowledgeFilter) ([]*vehiclecomp.KnowledgeEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *KnowledgeService) CountEntries(ctx context.Context) (int, error) {
	return s.CountEntriesFn(ctx)
}
