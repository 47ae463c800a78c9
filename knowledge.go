package vehiclecomp

import (
	"context"
	"time"
)

// KnowledgeEntry is one curated market insight merged into answers alongside
// live listings, e.g. typical price bands for a model generation. Make and
// Model are optional filters; general market facts leave both empty.
type KnowledgeEntry struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *KnowledgeEntry) Validate() error {
	if e.Topic == "" {
		return Errorf(EINVALID, "knowledge entry topic required")
	}
	if e.Content == "" {
		return Errorf(EINVALID, "knowledge entry content required")
	}
	return nil
}

// KnowledgeFilter restricts FindEntries results.
type KnowledgeFilter struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// KnowledgeService manages the curated knowledge base. Semantic similarity
// search over these entries belongs to the external retrieval collaborator;
// this service only persists and filters them.
type KnowledgeService interface {
	// CreateEntry stores a new knowledge entry.
	CreateEntry(ctx context.Context, entry *KnowledgeEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter KnowledgeFilter) ([]*KnowledgeEntry, error)

	// CountEntries returns the total number of stored entries.
	CountEntries(ctx context.Context) (int, error)
}
