package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("trims and activates", func(t *testing.T) {
		c, err := NewCategory("cat-1", "  Electronics ", " Gadgets ", now)
		require.NoError(t, err)

		assert.Equal(t, "cat-1", c.ID())
		assert.Equal(t, "Electronics", c.Name())
		assert.Equal(t, "Gadgets", c.Description())
		assert.True(t, c.IsActive())
		assert.Equal(t, now, c.CreatedAt())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("records created event", func(t *testing.T) {
		c, err := NewCategory("cat-1", "Books", "", now)
		require.NoError(t, err)

		require.Len(t, c.DomainEvents(), 1)
		event, ok := c.DomainEvents()[0].(*CategoryCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "category.created", event.EventType())
		assert.Equal(t, "cat-1", event.AggregateID())
		assert.Equal(t, "Books", event.Name)
	})

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"too short", "a", true},
		{"blank", "   ", true},
		{"whitespace does not count", " a ", true},
		{"minimum", "ab", false},
		{"maximum", strings.Repeat("x", 50), false},
		{"too long", strings.Repeat("x", 51), true},
		{"multibyte counts runes", strings.Repeat("é", 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategory("id", tt.input, "", now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReconstructCategory(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := ReconstructCategory("cat-2", "Toys", "", false, created, created.Add(time.Hour))

	assert.False(t, c.IsActive())
	assert.Empty(t, c.DomainEvents())
	assert.Equal(t, created.Add(time.Hour), c.UpdatedAt())
}
