package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

type EventLister interface {
	List(ctx context.Context, f outbox.Filter) ([]*m_outbox.Data, int64, error)
}

// eventJSON is one outbox event in the HTTP response.
type eventJSON struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

type listEventsResponse struct {
	Success    bool        `json:"success"`
	Events     []eventJSON `json:"events"`
	TotalCount int64       `json:"total_count"`
}

// EventsHandler serves the outbox inspection endpoint.
type EventsHandler struct {
	events EventLister
	log    logrus.FieldLogger
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(events EventLister, log logrus.FieldLogger) *EventsHandler {
	return &EventsHandler{events: events, log: log}
}

// Register mounts GET /events on r.
func (h *EventsHandler) Register(r *mux.Router) {
	r.HandleFunc("/events", h.List).Methods(http.MethodGet)
}

// List handles GET /api/events?event_type=&aggregate_id=&status=&limit=.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := outbox.Filter{
		EventType:   q.Get("event_type"),
		AggregateID: q.Get("aggregate_id"),
		Status:      q.Get("status"),
	}
	if filter.Status != "" && !m_outbox.ValidStatus(filter.Status) {
		respondValidation(w, h.log, FieldErrors{"status": {"Status must be pending, completed or failed"}})
		return
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondValidation(w, h.log, FieldErrors{"limit": {"Limit must be a positive integer"}})
			return
		}
		filter.Limit = limit
	}

	events, total, err := h.events.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := listEventsResponse{Success: true, Events: make([]eventJSON, 0, len(events)), TotalCount: total}
	for _, e := range events {
		item := eventJSON{
			EventID:     e.EventID,
			EventType:   e.EventType,
			AggregateID: e.AggregateID,
			Status:      e.Status,
			CreatedAt:   e.CreatedAt,
		}
		if e.Payload.Valid {
			if raw, err := json.Marshal(e.Payload.Value); err == nil {
				item.Payload = raw
			}
		}
		if e.ProcessedAt.Valid {
			processed := e.ProcessedAt.Time
			item.ProcessedAt = &processed
		}
		resp.Events = append(resp.Events, item)
	}

	writeJSON(w, h.log, http.StatusOK, resp)
}
