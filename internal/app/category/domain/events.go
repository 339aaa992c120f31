package domain

import "time"

// DomainEvent is implemented by every category event.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// CategoryCreatedEvent is emitted when a category is created.
type CategoryCreatedEvent struct {
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *CategoryCreatedEvent) EventType() string   { return "category.created" }
func (e *CategoryCreatedEvent) AggregateID() string { return e.CategoryID }
