package topic

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// Column limits of the topics table.
const (
	maxTitleLen     = 200
	maxSummaryLen   = 1000
	maxTopicTypeLen = 50
	maxCityLen      = 100
	maxStreetLen    = 200
)

// LocationInput is the address part of a topic payload.
type LocationInput struct {
	City   string
	Street string
}

// TopicInput holds the parameters for creating or updating a topic.
// Update replaces every field, so the same shape serves both.
type TopicInput struct {
	Title      string
	Summary    string
	TopicType  string
	Location   *LocationInput
	EventStart *time.Time
}

// Validate checks all fields and collects all errors.
func (i TopicInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "title", i.Title, maxTitleLen)
	errs = checkText(errs, "summary", i.Summary, maxSummaryLen)
	errs = checkText(errs, "topicType", i.TopicType, maxTopicTypeLen)

	if i.Location == nil {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	} else {
		errs = checkText(errs, "location.city", i.Location.City, maxCityLen)
		errs = checkText(errs, "location.street", i.Location.Street, maxStreetLen)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fields converts a validated input into domain fields.
func (i TopicInput) fields() (domain.TopicFields, error) {
	loc, err := domain.NewLocation(i.Location.City, i.Location.Street)
	if err != nil {
		return domain.TopicFields{}, err
	}
	return domain.TopicFields{
		Title:      i.Title,
		Summary:    i.Summary,
		TopicType:  i.TopicType,
		Location:   loc,
		EventStart: i.EventStart,
	}, nil
}

func checkText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "max " + strconv.Itoa(maxLen) + " characters"})
	}
	return errs
}

// ListTopicsInput holds paging parameters. Out-of-range values are clamped
// rather than rejected.
type ListTopicsInput struct {
	PageNumber     int
	PageSize       int
	IncludeDeleted bool
}

func (i ListTopicsInput) normalize(defaultSize, maxSize int) ListTopicsInput {
	if i.PageNumber < 1 {
		i.PageNumber = 1
	}
	if i.PageSize < 1 || i.PageSize > maxSize {
		i.PageSize = defaultSize
	}
	return i
}
