package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

func TestEventsHandler_List(t *testing.T) {
	h := newHarness()
	h.events.events = []*m_outbox.Data{{
		EventID:     "evt-1",
		EventType:   "product.created",
		AggregateID: "prod-1",
		Payload:     spanner.NullJSON{Value: json.RawMessage(`{"product_id":"prod-1"}`), Valid: true},
		Status:      m_outbox.StatusPending,
		CreatedAt:   fixedTime,
	}}

	rec, body := do(t, h.router(), http.MethodGet, "/api/events?event_type=product.created&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total_count"])
	assert.Equal(t, outbox.Filter{EventType: "product.created", Limit: 5}, h.events.filter)

	events := body["events"].([]interface{})
	require.Len(t, events, 1)
	event := events[0].(map[string]interface{})
	assert.Equal(t, "evt-1", event["event_id"])
	assert.Equal(t, map[string]interface{}{"product_id": "prod-1"}, event["payload"])
	assert.NotContains(t, event, "processed_at")
}

func TestEventsHandler_InvalidLimit(t *testing.T) {
	rec, body := do(t, newHarness().router(), http.MethodGet, "/api/events?limit=-3", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["errors"], "limit")
}

func TestEventsHandler_InvalidStatus(t *testing.T) {
	h := newHarness()
	rec, body := do(t, h.router(), http.MethodGet, "/api/events?status=processing", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["errors"], "status")
	assert.Equal(t, outbox.Filter{}, h.events.filter)
}
