package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	Price       string    `json:"price"`
	Discount    float64   `json:"discount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when mutable product fields change.
type ProductUpdatedEvent struct {
	ProductID   string    `json:"product_id"`
	Fields      []string  `json:"fields"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductDeletedEvent is emitted when a product is removed.
type ProductDeletedEvent struct {
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code"`
	DeletedAt   time.Time `json:"deleted_at"`
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return e.ProductID
}
