package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fixed clock does not move", func(t *testing.T) {
		clk := NewMockClock(start)
		assert.Equal(t, start, clk.Now())
		assert.Equal(t, start, clk.Now())
	})

	t.Run("advance and set", func(t *testing.T) {
		clk := NewMockClock(start)
		clk.Advance(time.Minute)
		assert.Equal(t, start.Add(time.Minute), clk.Now())

		later := start.Add(24 * time.Hour)
		clk.Set(later)
		assert.Equal(t, later, clk.Now())
	})

	t.Run("ticking clock steps after each read", func(t *testing.T) {
		clk := NewTickingClock(start, time.Millisecond)
		assert.Equal(t, start.UnixMilli(), Millis(clk))
		assert.Equal(t, start.UnixMilli()+1, Millis(clk))
		assert.Equal(t, start.UnixMilli()+2, Millis(clk))
	})

	t.Run("concurrent reads", func(t *testing.T) {
		clk := NewTickingClock(start, time.Millisecond)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				clk.Now()
			}()
		}
		wg.Wait()

		assert.Equal(t, start.Add(50*time.Millisecond), clk.Now())
	})
}

func TestRealClock_UTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}
