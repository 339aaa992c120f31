package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the outbox_events table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts data stamped with the commit timestamp. A blank status
// is stored as pending.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	status := data.Status
	if status == "" {
		status = StatusPending
	}
	return spanner.Insert(TableName, Columns, []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
	})
}
