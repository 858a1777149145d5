package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TopicID identifies a Topic. The zero UUID is never a valid TopicID.
type TopicID struct {
	value uuid.UUID
}

// NewTopicID returns a freshly generated identifier.
func NewTopicID() TopicID {
	return TopicID{value: uuid.New()}
}

// ParseTopicID wraps id, rejecting uuid.Nil.
func ParseTopicID(id uuid.UUID) (TopicID, error) {
	if id == uuid.Nil {
		return TopicID{}, newDomainError("topic id must not be empty")
	}
	return TopicID{value: id}, nil
}

func (id TopicID) UUID() uuid.UUID { return id.value }

func (id TopicID) String() string { return id.value.String() }

// IsZero reports whether id was never initialised.
func (id TopicID) IsZero() bool { return id.value == uuid.Nil }

// Location is where a topic takes place. Values compare with ==.
type Location struct {
	city   string
	street string
}

// NewLocation builds a Location; both parts are required.
func NewLocation(city, street string) (Location, error) {
	city = strings.TrimSpace(city)
	street = strings.TrimSpace(street)
	if city == "" {
		return Location{}, newDomainError("location city is required")
	}
	if street == "" {
		return Location{}, newDomainError("location street is required")
	}
	return Location{city: city, street: street}, nil
}

func (l Location) City() string { return l.city }

func (l Location) Street() string { return l.street }

// IsZero reports whether l is the empty Location.
func (l Location) IsZero() bool { return l == Location{} }

// TopicFields is the mutable part of a Topic, shared by creation and update.
type TopicFields struct {
	Title      string
	Summary    string
	TopicType  string
	Location   Location
	EventStart *time.Time
}

func (f TopicFields) validate() error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return newDomainError("title is required")
	case strings.TrimSpace(f.Summary) == "":
		return newDomainError("summary is required")
	case strings.TrimSpace(f.TopicType) == "":
		return newDomainError("topic type is required")
	case f.Location.IsZero():
		return newDomainError("location is required")
	}
	return nil
}

// Topic is the aggregate root. It is soft-deleted by stamping DeletedAt and
// never physically removed by the application.
type Topic struct {
	ID         TopicID
	Title      string
	Summary    string
	TopicType  string
	Location   Location
	EventStart *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// NewTopic validates fields and returns a new active topic created at now.
func NewTopic(id TopicID, fields TopicFields, now time.Time) (*Topic, error) {
	if id.IsZero() {
		return nil, newDomainError("topic id must not be empty")
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}

	t := &Topic{
		ID:        id,
		CreatedAt: now.UTC(),
	}
	t.apply(fields)
	return t, nil
}

// RestoreTopic rebuilds a Topic from persisted state without stamping timestamps.
func RestoreTopic(id TopicID, fields TopicFields, createdAt time.Time, updatedAt, deletedAt *time.Time) *Topic {
	t := &Topic{
		ID:        id,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
	t.apply(fields)
	return t
}

// Update replaces the mutable fields and stamps UpdatedAt.
// CreatedAt and DeletedAt are left untouched.
func (t *Topic) Update(fields TopicFields, now time.Time) error {
	if err := fields.validate(); err != nil {
		return err
	}
	t.apply(fields)
	ts := now.UTC()
	t.UpdatedAt = &ts
	return nil
}

// MarkDeleted soft-deletes the topic. Deletion is one-way.
func (t *Topic) MarkDeleted(now time.Time) error {
	if t.IsDeleted() {
		return ErrAlreadyDeleted
	}
	ts := now.UTC()
	t.DeletedAt = &ts
	return nil
}

// IsDeleted reports whether the topic has been soft-deleted.
func (t *Topic) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Fields returns the topic's mutable state.
func (t *Topic) Fields() TopicFields {
	return TopicFields{
		Title:      t.Title,
		Summary:    t.Summary,
		TopicType:  t.TopicType,
		Location:   t.Location,
		EventStart: t.EventStart,
	}
}

func (t *Topic) apply(f TopicFields) {
	t.Title = strings.TrimSpace(f.Title)
	t.Summary = strings.TrimSpace(f.Summary)
	t.TopicType = strings.TrimSpace(f.TopicType)
	t.Location = f.Location
	if f.EventStart != nil {
		es := f.EventStart.UTC()
		t.EventStart = &es
	} else {
		t.EventStart = nil
	}
}

// TopicFilter selects a page of topics ordered by created_at descending.
type TopicFilter struct {
	Limit          int
	Offset         int
	IncludeDeleted bool
}
