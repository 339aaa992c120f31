package outbox

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Filter narrows an event listing. Empty fields match everything.
type Filter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int
}

// Statements returns the page and count queries for f, newest events first.
func (f Filter) Statements() (page, count spanner.Statement) {
	builder := query.From(m_outbox.TableName).
		Select(m_outbox.Columns...).
		When(f.EventType != "", query.Eq(m_outbox.EventType, f.EventType)).
		When(f.AggregateID != "", query.Eq(m_outbox.AggregateID, f.AggregateID)).
		When(f.Status != "", query.Eq(m_outbox.Status, f.Status))

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	page = builder.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(int64(limit)).Build()
	count = builder.Count().Build()
	return page, count
}

// Reader lists outbox events for inspection.
type Reader struct {
	client *spanner.Client
}

// NewReader creates a new Reader.
func NewReader(client *spanner.Client) *Reader {
	return &Reader{client: client}
}

// List returns the matching events and the total number of matches.
func (r *Reader) List(ctx context.Context, f Filter) ([]*m_outbox.Data, int64, error) {
	pageStmt, countStmt := f.Statements()

	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	var total int64
	countIter := txn.Query(ctx, countStmt)
	defer countIter.Stop()
	row, err := countIter.Next()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	if err := row.Column(0, &total); err != nil {
		return nil, 0, fmt.Errorf("failed to parse event count: %w", err)
	}

	iter := txn.Query(ctx, pageStmt)
	defer iter.Stop()

	events := make([]*m_outbox.Data, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	return events, total, nil
}
