package outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	ID string `json:"id"`
}

func (e *testEvent) EventType() string   { return "test.happened" }
func (e *testEvent) AggregateID() string { return e.ID }

type brokenEvent struct {
	testEvent
	Callback func() `json:"callback"`
}

func TestMutations(t *testing.T) {
	w := NewWriter()

	t.Run("one mutation per event", func(t *testing.T) {
		muts, err := Mutations(w, []*testEvent{{ID: "a"}, {ID: "b"}})
		require.NoError(t, err)
		assert.Len(t, muts, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		muts, err := Mutations(w, []*testEvent{})
		require.NoError(t, err)
		assert.Empty(t, muts)
	})

	t.Run("unserializable event", func(t *testing.T) {
		_, err := Mutations(w, []*brokenEvent{{testEvent: testEvent{ID: "a"}, Callback: func() {}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test.happened")
	})
}
