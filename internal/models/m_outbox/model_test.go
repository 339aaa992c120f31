package m_outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusCompleted, StatusFailed} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("processing"))
	assert.False(t, ValidStatus(""))
}

func TestInsertMut(t *testing.T) {
	assert.NotNil(t, NewModel().InsertMut(&Data{EventID: "e-1", EventType: "product.created", AggregateID: "p-1"}))
}
