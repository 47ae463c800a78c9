package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// Compile-time interface verification.
var _ vehiclecomp.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService implements vehiclecomp.KnowledgeService using SQLite.
type KnowledgeService struct {
	db *DB
}

// NewKnowledgeService creates a new KnowledgeService.
func NewKnowledgeService(db *DB) *KnowledgeService {
	return &KnowledgeService{db: db}
}

// CreateEntry stores a new knowledge entry, assigning its ID and timestamp.
func (s *KnowledgeService) CreateEntry(ctx context.Context, entry *vehiclecomp.KnowledgeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO knowledge_entries (id, topic, content, make, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Topic, entry.Content, entry.Make, entry.Model,
		entry.CreatedAt.Format(time.RFC3339))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *KnowledgeService) FindEntries(ctx context.Context, filter vehiclecomp.KnowledgeFilter) ([]*vehiclecomp.KnowledgeEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, topic, content, make, model, created_at FROM knowledge_entries WHERE 1=1")

	if filter.Make != nil {
		query.WriteString(" AND make = ? COLLATE NOCASE")
		args = append(args, *filter.Make)
	}
	if filter.Model != nil {
		query.WriteString(" AND model = ? COLLATE NOCASE")
		args = append(args, *filter.Model)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*vehiclecomp.KnowledgeEntry
	for rows.Next() {
		var entry vehiclecomp.KnowledgeEntry
		var createdAt string

		if err := rows.Scan(&entry.ID, &entry.Topic, &entry.Content, &entry.Make, &entry.Model, &createdAt); err != nil {
			return nil, err
		}

		entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// CountEntries returns the total number of stored entries.
func (s *KnowledgeService) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM knowledge_entries").Scan(&count)
	return count, err
}

// Seed loads the initial market insights into an empty knowledge base. It is
// a no-op when entries already exist, so repeated startup calls are safe.
func (s *KnowledgeService) Seed(ctx context.Context) (int, error) {
	count, err := s.CountEntries(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := range seedEntries {
		entry := seedEntries[i]
		if err := s.CreateEntry(ctx, &entry); err != nil {
			return i, err
		}
	}
	return len(seedEntries), nil
}

// seedEntries is the curated starting point for the knowledge base: price
// bands and buying guidance for the models most traded on the local market.
var seedEntries = []vehiclecomp.KnowledgeEntry{
	{
		Topic:   "Toyota Aqua price range",
		Content: "Toyota Aqua is a popular hybrid vehicle in Sri Lanka, known for fuel efficiency. Typical price range for 2015-2018 models is Rs 4.5M - 6.5M.",
		Make:    "Toyota",
		Model:   "Aqua",
	},
	{
		Topic:   "Honda Fit price range",
		Content: "Honda Fit (also known as Honda Jazz) is a compact hatchback. 2013-2017 models typically range from Rs 3.5M - 5.5M depending on condition and mileage.",
		Make:    "Honda",
		Model:   "Fit",
	},
	{
		Topic:   "Suzuki Wagon R price range",
		Content: "Suzuki Wagon R is an affordable family car. 2015-2019 models usually cost between Rs 2.5M - 4.0M.",
		Make:    "Suzuki",
		Model:   "Wagon R",
	},
	{
		Topic:   "Price factors",
		Content: "Vehicle prices in Sri Lanka are influenced by year, mileage, condition, and import duties. Hybrid vehicles generally have higher resale value.",
	},
	{
		Topic:   "Listing sites",
		Content: "Popular vehicle websites in Sri Lanka include Riyasewana.com, Ikman.lk, and Patpat.lk for buying and selling vehicles.",
	},
	{
		Topic:   "Total cost of ownership",
		Content: "When comparing vehicles, consider total cost of ownership including fuel efficiency, maintenance costs, and insurance.",
	},
	{
		Topic:   "Nissan Leaf price range",
		Content: "Nissan Leaf is a fully electric vehicle gaining popularity. Used models (2013-2017) range from Rs 2.5M - 4.5M.",
		Make:    "Nissan",
		Model:   "Leaf",
	},
	{
		Topic:   "Toyota Prius price range",
		Content: "Toyota Prius is another popular hybrid. Older models (2010-2015) cost Rs 3.0M - 5.5M, while newer ones (2016-2020) range Rs 6.0M - 9.0M.",
		Make:    "Toyota",
		Model:   "Prius",
	},
	{
		Topic:   "Mitsubishi Montero Sport price range",
		Content: "Mitsubishi Montero Sport is a popular SUV. 2015-2019 models typically cost Rs 8.0M - 12.0M.",
		Make:    "Mitsubishi",
		Model:   "Montero Sport",
	},
	{
		Topic:   "Depreciation",
		Content: "Vehicle depreciation in Sri Lanka averages 10-15% per year for the first 5 years, then slows down.",
	},
}
