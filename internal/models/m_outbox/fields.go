package m_outbox

const (
	TableName = "outbox_events"

	EventID     = "event_id"
	EventType   = "event_type"
	AggregateID = "aggregate_id"
	Payload     = "payload"
	Status      = "status"
	CreatedAt   = "created_at"
	ProcessedAt = "processed_at"
)

// Columns lists every outbox_events column in table order.
var Columns = []string{EventID, EventType, AggregateID, Payload, Status, CreatedAt, ProcessedAt}

// Lifecycle of an event. Only pending is written by this service; a relay
// moves events to completed or failed and stamps processed_at.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ValidStatus reports whether s is one of the lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
