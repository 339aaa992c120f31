package outbox

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
)

// Retention says how long processed events are kept.
type Retention struct {
	Completed time.Duration
	Failed    time.Duration
}

// expiredWhere matches processed events older than their status' cutoff.
var expiredWhere = fmt.Sprintf(
	"(%[1]s = '%[2]s' AND %[3]s < @completedCutoff) OR (%[1]s = '%[4]s' AND %[3]s < @failedCutoff)",
	m_outbox.Status, m_outbox.StatusCompleted, m_outbox.ProcessedAt, m_outbox.StatusFailed,
)

func (r Retention) params(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"completedCutoff": now.Add(-r.Completed),
		"failedCutoff":    now.Add(-r.Failed),
	}
}

// CountStatement groups the expired events by status.
func (r Retention) CountStatement(now time.Time) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf("SELECT %[1]s, COUNT(*) FROM %[2]s WHERE %[3]s GROUP BY %[1]s",
			m_outbox.Status, m_outbox.TableName, expiredWhere),
		Params: r.params(now),
	}
}

// DeleteStatement removes the expired events.
func (r Retention) DeleteStatement(now time.Time) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, expiredWhere),
		Params: r.params(now),
	}
}

// Cleaner purges processed outbox events past their retention.
type Cleaner struct {
	client *spanner.Client
}

// NewCleaner creates a new Cleaner.
func NewCleaner(client *spanner.Client) *Cleaner {
	return &Cleaner{client: client}
}

// Expired counts, per status, the events Purge would delete.
func (c *Cleaner) Expired(ctx context.Context, r Retention, now time.Time) (map[string]int64, error) {
	iter := c.client.Single().Query(ctx, r.CountStatement(now))
	defer iter.Stop()

	counts := make(map[string]int64)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count expired events: %w", err)
		}

		var status string
		var n int64
		if err := row.Columns(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to parse expired count: %w", err)
		}
		counts[status] = n
	}
	return counts, nil
}

// Purge deletes the expired events and returns how many rows were removed.
func (c *Cleaner) Purge(ctx context.Context, r Retention, now time.Time) (int64, error) {
	var deleted int64
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, r.DeleteStatement(now))
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge outbox events: %w", err)
	}
	return deleted, nil
}
