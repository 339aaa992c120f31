package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinNameLength = 2
	MaxNameLength = 50
)

// Category groups products. Categories are created active and are never
// deactivated through the API.
type Category struct {
	id          string
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	events []DomainEvent
}

// NewCategory creates a new active Category.
func NewCategory(id, name, description string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return nil, ErrInvalidName
	}

	category := &Category{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}

	category.events = append(category.events, &CategoryCreatedEvent{
		CategoryID:  category.id,
		Name:        category.name,
		Description: category.description,
		CreatedAt:   now,
	})

	return category, nil
}

// ReconstructCategory rebuilds a Category from storage.
func ReconstructCategory(id, name, description string, isActive bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() string                  { return c.id }
func (c *Category) Name() string                { return c.name }
func (c *Category) Description() string         { return c.description }
func (c *Category) IsActive() bool              { return c.isActive }
func (c *Category) CreatedAt() time.Time        { return c.createdAt }
func (c *Category) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Category) DomainEvents() []DomainEvent { return c.events }
