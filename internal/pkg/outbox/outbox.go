// Package outbox turns domain events into outbox_events rows written in the
// same commit as the aggregate change.
package outbox

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
)

// Event is implemented by the domain events of every aggregate.
type Event interface {
	EventType() string
	AggregateID() string
}

// Writer builds outbox insert mutations.
type Writer struct {
	model *m_outbox.Model
	newID func() string
}

// NewWriter creates a Writer that assigns random UUIDs to events.
func NewWriter() *Writer {
	return &Writer{
		model: m_outbox.NewModel(),
		newID: func() string { return uuid.New().String() },
	}
}

// InsertMut serializes event and returns its insert mutation.
func (w *Writer) InsertMut(event Event) (*spanner.Mutation, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s event: %w", event.EventType(), err)
	}

	return w.model.InsertMut(&m_outbox.Data{
		EventID:     w.newID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     spanner.NullJSON{Value: json.RawMessage(payload), Valid: true},
		Status:      m_outbox.StatusPending,
	}), nil
}

// Mutations returns one insert mutation per event, in order.
func Mutations[E Event](w *Writer, events []E) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(events))
	for _, event := range events {
		mut, err := w.InsertMut(event)
		if err != nil {
			return nil, err
		}
		muts = append(muts, mut)
	}
	return muts, nil
}
