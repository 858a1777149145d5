package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/topics-backend/internal/domain"
	topicsvc "github.com/heartmarshall/topics-backend/internal/service/topic"
)

// TopicsPath is the mount point of the topics API.
const TopicsPath = "/api/topics"

const maxRequestBodyBytes = 1 << 20

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	ListTopics(ctx context.Context, input topicsvc.ListTopicsInput) (domain.Page[topicsvc.View], error)
	ListDeletedTopics(ctx context.Context) ([]topicsvc.View, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*topicsvc.View, error)
	CreateTopic(ctx context.Context, input topicsvc.TopicInput) (*topicsvc.View, error)
	UpdateTopic(ctx context.Context, id uuid.UUID, input topicsvc.TopicInput) (*topicsvc.View, error)
	DeleteTopic(ctx context.Context, id uuid.UUID) error
}

// TopicHandler serves the topics REST endpoints.
type TopicHandler struct {
	svc         topicService
	log         *slog.Logger
	validate    *requestValidator
	maxPageSize int
}

// NewTopicHandler creates a TopicHandler. Requests asking for more than
// maxPageSize items per page are rejected.
func NewTopicHandler(svc topicService, logger *slog.Logger, maxPageSize int) *TopicHandler {
	if maxPageSize < 1 {
		maxPageSize = topicsvc.MaxPageSize
	}
	return &TopicHandler{
		svc:         svc,
		log:         logger.With("handler", "topic"),
		validate:    newRequestValidator(),
		maxPageSize: maxPageSize,
	}
}

// Routes mounts the handlers on r. The write routes get the extra write middleware.
func (h *TopicHandler) Routes(r chi.Router, write ...func(http.Handler) http.Handler) {
	r.Get("/", h.List)
	r.Get("/deleted", h.ListDeleted)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(write...)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

type locationRequest struct {
	City   string `json:"city"   validate:"required,notblank,max=100"`
	Street string `json:"street" validate:"required,notblank,max=200"`
}

type topicRequest struct {
	Title      string           `json:"title"      validate:"required,notblank,max=200"`
	Summary    string           `json:"summary"    validate:"required,notblank,max=1000"`
	TopicType  string           `json:"topicType"  validate:"required,notblank,max=50"`
	Location   *locationRequest `json:"location"   validate:"required"`
	EventStart *time.Time       `json:"eventStart"`
}

func (req topicRequest) toInput() topicsvc.TopicInput {
	in := topicsvc.TopicInput{
		Title:      req.Title,
		Summary:    req.Summary,
		TopicType:  req.TopicType,
		EventStart: req.EventStart,
	}
	if req.Location != nil {
		in.Location = &topicsvc.LocationInput{City: req.Location.City, Street: req.Location.Street}
	}
	return in
}

type topicResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	TopicType  string     `json:"topicType"`
	City       string     `json:"city"`
	Street     string     `json:"street"`
	EventStart *time.Time `json:"eventStart"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

type topicPageResponse struct {
	Items           []topicResponse `json:"items"`
	TotalCount      int             `json:"totalCount"`
	PageNumber      int             `json:"pageNumber"`
	PageSize        int             `json:"pageSize"`
	TotalPages      int             `json:"totalPages"`
	HasPreviousPage bool            `json:"hasPreviousPage"`
	HasNextPage     bool            `json:"hasNextPage"`
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseListQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := domain.MapPage(page, toTopicResponse)
	writeJSON(w, http.StatusOK, topicPageResponse{
		Items:           resp.Items,
		TotalCount:      resp.TotalCount,
		PageNumber:      resp.PageNumber,
		PageSize:        resp.PageSize,
		TotalPages:      resp.TotalPages(),
		HasPreviousPage: resp.HasPreviousPage(),
		HasNextPage:     resp.HasNextPage(),
	})
}

// ListDeleted handles GET /api/topics/deleted.
func (h *TopicHandler) ListDeleted(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListDeletedTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]topicResponse, 0, len(views))
	for _, v := range views {
		items = append(items, toTopicResponse(v))
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(*view))
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTopic(w, r)
	if !ok {
		return
	}

	view, err := h.svc.CreateTopic(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", TopicsPath+"/"+view.ID.String())
	writeJSON(w, http.StatusCreated, toTopicResponse(*view))
}

// Update handles PUT /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeTopic(w, r)
	if !ok {
		return
	}

	view, err := h.svc.UpdateTopic(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(*view))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TopicHandler) decodeTopic(w http.ResponseWriter, r *http.Request) (topicRequest, bool) {
	var req topicRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return req, false
	}
	if err := h.validate.Validate(req); err != nil {
		handleError(w, r, h.log, err)
		return req, false
	}
	return req, true
}

// parseListQuery reads pageNumber, pageSize and includeDeleted. Missing
// values fall back to the service defaults; present but invalid ones are
// rejected here instead of being clamped.
func (h *TopicHandler) parseListQuery(r *http.Request) (topicsvc.ListTopicsInput, error) {
	q := r.URL.Query()
	var (
		input topicsvc.ListTopicsInput
		errs  []domain.FieldError
	)

	if raw := q.Get("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "pageNumber", Message: "must be an integer >= 1"})
		}
		input.PageNumber = n
	}

	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxPageSize {
			errs = append(errs, domain.FieldError{
				Field:   "pageSize",
				Message: "must be an integer in 1.." + strconv.Itoa(h.maxPageSize),
			})
		}
		input.PageSize = n
	}

	if raw := q.Get("includeDeleted"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "includeDeleted", Message: "must be a boolean"})
		}
		input.IncludeDeleted = b
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid topic id")
		return uuid.Nil, false
	}
	return id, true
}

func toTopicResponse(v topicsvc.View) topicResponse {
	return topicResponse{
		ID:         v.ID.String(),
		Title:      v.Title,
		Summary:    v.Summary,
		TopicType:  v.TopicType,
		City:       v.City,
		Street:     v.Street,
		EventStart: v.EventStart,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		DeletedAt:  v.DeletedAt,
	}
}
