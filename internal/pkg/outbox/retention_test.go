package outbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetention_Statements(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	r := Retention{Completed: 30 * 24 * time.Hour, Failed: 90 * 24 * time.Hour}

	count := r.CountStatement(now)
	assert.Equal(t,
		"SELECT status, COUNT(*) FROM outbox_events WHERE (status = 'completed' AND processed_at < @completedCutoff) OR (status = 'failed' AND processed_at < @failedCutoff) GROUP BY status",
		count.SQL)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), count.Params["completedCutoff"])
	assert.Equal(t, time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), count.Params["failedCutoff"])

	del := r.DeleteStatement(now)
	assert.Equal(t,
		"DELETE FROM outbox_events WHERE (status = 'completed' AND processed_at < @completedCutoff) OR (status = 'failed' AND processed_at < @failedCutoff)",
		del.SQL)
	assert.Equal(t, count.Params, del.Params)
}
