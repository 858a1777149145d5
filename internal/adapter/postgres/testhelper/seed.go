package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TopicRow is the raw shape of a seeded topics row.
type TopicRow struct {
	ID        uuid.UUID
	Title     string
	Summary   string
	TopicType string
	City      string
	Street    string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// SeedOption customises a seeded topic.
type SeedOption func(*TopicRow)

// WithCreatedAt sets created_at.
func WithCreatedAt(ts time.Time) SeedOption {
	return func(r *TopicRow) { r.CreatedAt = ts.UTC().Truncate(time.Microsecond) }
}

// Deleted marks the row as soft-deleted at ts.
func Deleted(ts time.Time) SeedOption {
	return func(r *TopicRow) {
		d := ts.UTC().Truncate(time.Microsecond)
		r.DeletedAt = &d
	}
}

// SeedTopic inserts a topics row directly, bypassing the repository.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, opts ...SeedOption) TopicRow {
	t.Helper()

	suffix := uuid.New().String()[:8]
	row := TopicRow{
		ID:        uuid.New(),
		Title:     "Topic " + suffix,
		Summary:   "Summary " + suffix,
		TopicType: "social",
		City:      "Berlin",
		Street:    "Mainstr 1",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&row)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, title, summary, topic_type, city, street, created_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.ID, row.Title, row.Summary, row.TopicType, row.City, row.Street, row.CreatedAt, row.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert: %v", err)
	}

	return row
}
