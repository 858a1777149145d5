// Package topic implements the Topic repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package topic

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/topics-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topics-backend/internal/domain"
)

const (
	table  = "topics"
	entity = "topic"
)

var columns = []string{
	"id", "title", "summary", "topic_type", "city", "street",
	"event_start", "created_at", "updated_at", "deleted_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// notDeleted is the default visibility predicate.
var notDeleted = sq.Eq{"deleted_at": nil}

type row struct {
	ID         uuid.UUID  `db:"id"`
	Title      string     `db:"title"`
	Summary    string     `db:"summary"`
	TopicType  string     `db:"topic_type"`
	City       string     `db:"city"`
	Street     string     `db:"street"`
	EventStart *time.Time `db:"event_start"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository. db is normally a *pgxpool.Pool; inside
// TxManager.RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key, including soft-deleted rows.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	return r.getOne(ctx, id, psql.Select(columns...).From(table).Where(sq.Eq{"id": id.UUID()}))
}

// GetByIDForUpdate is GetByID with a row lock. It only makes sense inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	return r.getOne(ctx, id, psql.Select(columns...).From(table).Where(sq.Eq{"id": id.UUID()}).Suffix("FOR UPDATE"))
}

func (r *Repo) getOne(ctx context.Context, id domain.TopicID, query sq.SelectBuilder) (*domain.Topic, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	return toDomain(rw)
}

// Count returns the number of topics, excluding soft-deleted ones unless includeDeleted.
func (r *Repo) Count(ctx context.Context, includeDeleted bool) (int, error) {
	query := psql.Select("count(*)").From(table)
	if !includeDeleted {
		query = query.Where(notDeleted)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, countKey)
	}
	return int(n), nil
}

// List returns one window of topics ordered newest first. Ties on created_at
// are broken by id so that consecutive pages never overlap.
func (r *Repo) List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	query := psql.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC")
	if !filter.IncludeDeleted {
		query = query.Where(notDeleted)
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	return r.selectMany(ctx, query)
}

// ListDeleted returns all soft-deleted topics ordered newest first.
func (r *Repo) ListDeleted(ctx context.Context) ([]domain.Topic, error) {
	query := psql.Select(columns...).From(table).
		Where(sq.NotEq{"deleted_at": nil}).
		OrderBy("created_at DESC", "id DESC")

	return r.selectMany(ctx, query)
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder) ([]domain.Topic, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, entity, listKey)
	}

	topics := make([]domain.Topic, 0, len(rows))
	for _, rw := range rows {
		t, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		topics = append(topics, *t)
	}
	return topics, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic. Returns domain.ErrAlreadyExists on a duplicate id.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) error {
	sqlStr, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			t.ID.UUID(), t.Title, t.Summary, t.TopicType,
			t.Location.City(), t.Location.Street(),
			t.EventStart, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...); err != nil {
		return postgres.MapError(err, entity, t.ID)
	}
	return nil
}

// Update persists all mutable columns and lifecycle timestamps of t.
// created_at is never rewritten. Returns domain.ErrNotFound if the row is gone.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) error {
	sqlStr, args, err := psql.Update(table).
		SetMap(map[string]any{
			"title":       t.Title,
			"summary":     t.Summary,
			"topic_type":  t.TopicType,
			"city":        t.Location.City(),
			"street":      t.Location.Street(),
			"event_start": t.EventStart,
			"updated_at":  t.UpdatedAt,
			"deleted_at":  t.DeletedAt,
		}).
		Where(sq.Eq{"id": t.ID.UUID()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, entity, t.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, t.ID, domain.ErrNotFound)
	}
	return nil
}

// HardDeleteOld physically removes topics soft-deleted before threshold.
// Used by the retention cleanup job only; the service never hard-deletes.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	sqlStr, args, err := psql.Delete(table).Where(deletedBefore(threshold)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, cleanupKey)
	}
	return tag.RowsAffected(), nil
}

// CountDeletedBefore reports how many rows HardDeleteOld would remove.
func (r *Repo) CountDeletedBefore(ctx context.Context, threshold time.Time) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").From(table).Where(deletedBefore(threshold)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, cleanupKey)
	}
	return int(n), nil
}

func deletedBefore(threshold time.Time) sq.And {
	return sq.And{sq.NotEq{"deleted_at": nil}, sq.Lt{"deleted_at": threshold}}
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type key string

func (k key) String() string { return string(k) }

const (
	countKey   key = "count"
	listKey    key = "list"
	cleanupKey key = "cleanup"
)

func mapScanError(err error, id domain.TopicID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return postgres.MapError(err, entity, id)
}

func toDomain(rw row) (*domain.Topic, error) {
	id, err := domain.ParseTopicID(rw.ID)
	if err != nil {
		return nil, fmt.Errorf("%s %s: corrupt row: %w", entity, rw.ID, err)
	}
	loc, err := domain.NewLocation(rw.City, rw.Street)
	if err != nil {
		return nil, fmt.Errorf("%s %s: corrupt row: %w", entity, rw.ID, err)
	}

	fields := domain.TopicFields{
		Title:      rw.Title,
		Summary:    rw.Summary,
		TopicType:  rw.TopicType,
		Location:   loc,
		EventStart: rw.EventStart,
	}
	return domain.RestoreTopic(id, fields, rw.CreatedAt.UTC(), utcPtr(rw.UpdatedAt), utcPtr(rw.DeletedAt)), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
