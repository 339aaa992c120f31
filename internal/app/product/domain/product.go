package domain

import (
	"strings"
	"time"
)

// StockStatus is the availability of a product.
type StockStatus string

const (
	StatusInStock  StockStatus = "In Stock"
	StatusStockOut StockStatus = "Stock Out"
)

// ParseStockStatus validates s. An empty string yields StatusInStock.
func ParseStockStatus(s string) (StockStatus, error) {
	switch StockStatus(s) {
	case "":
		return StatusInStock, nil
	case StatusInStock, StatusStockOut:
		return StockStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// NewProductParams groups the inputs of NewProduct.
type NewProductParams struct {
	ID          string
	Code        string
	Name        string
	Description string
	Price       *Money
	Discount    *Discount
	Image       string
	Status      StockStatus
	CategoryID  string
}

// Product is the aggregate root for catalog products. The product code is
// assigned at creation and never changes.
type Product struct {
	id          string
	code        string
	name        string
	description string
	price       *Money
	discount    *Discount
	image       string
	status      StockStatus
	categoryID  string
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(p NewProductParams, now time.Time) (*Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if p.Price == nil || p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if p.CategoryID == "" {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(p.Image) == "" {
		return nil, ErrEmptyImage
	}
	if p.Code == "" {
		return nil, ErrEmptyProductCode
	}
	status, err := ParseStockStatus(string(p.Status))
	if err != nil {
		return nil, err
	}
	discount := p.Discount
	if discount == nil {
		discount = NoDiscount()
	}

	product := &Product{
		id:          p.ID,
		code:        p.Code,
		name:        name,
		description: description,
		price:       p.Price.Copy(),
		discount:    discount,
		image:       strings.TrimSpace(p.Image),
		status:      status,
		categoryID:  p.CategoryID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	product.recordEvent(&ProductCreatedEvent{
		ProductID:   product.id,
		ProductCode: product.code,
		Name:        product.name,
		CategoryID:  product.categoryID,
		Price:       product.price.String(),
		Discount:    product.discount.Float64(),
		Status:      string(product.status),
		CreatedAt:   now,
	})

	return product, nil
}

// ReconstructProduct reconstitutes a Product from database (for loading existing products).
func ReconstructProduct(
	id, code, name, description string,
	price *Money,
	discount *Discount,
	image string,
	status StockStatus,
	categoryID string,
	version int64,
	createdAt, updatedAt time.Time,
) *Product {
	if discount == nil {
		discount = NoDiscount()
	}
	return &Product{
		id:          id,
		code:        code,
		name:        name,
		description: description,
		price:       price,
		discount:    discount,
		image:       image,
		status:      status,
		categoryID:  categoryID,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Code() string                { return p.code }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Price() *Money               { return p.price.Copy() }
func (p *Product) Discount() *Discount         { return p.discount }
func (p *Product) Image() string               { return p.image }
func (p *Product) Status() StockStatus         { return p.status }
func (p *Product) CategoryID() string          { return p.categoryID }
func (p *Product) Version() int64              { return p.version }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// FinalPrice returns the price with the discount applied.
func (p *Product) FinalPrice() *Money {
	return p.discount.Apply(p.price)
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	if description == p.description {
		return nil
	}
	p.description = description
	p.changes.MarkDirty(FieldDescription)
	return nil
}

// SetDiscount replaces the discount.
func (p *Product) SetDiscount(discount *Discount) error {
	if discount == nil {
		return ErrInvalidDiscount
	}
	if discount.Equals(p.discount) {
		return nil
	}
	p.discount = discount
	p.changes.MarkDirty(FieldDiscount)
	return nil
}

// SetStatus changes the stock status.
func (p *Product) SetStatus(status StockStatus) error {
	if status != StatusInStock && status != StatusStockOut {
		return ErrInvalidStatus
	}
	if status == p.status {
		return nil
	}
	p.status = status
	p.changes.MarkDirty(FieldStatus)
	return nil
}

// MarkUpdated records a single ProductUpdatedEvent covering all dirty fields.
func (p *Product) MarkUpdated(now time.Time) {
	if !p.changes.HasChanges() {
		return
	}
	p.updatedAt = now
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:   p.id,
		Fields:      p.changes.DirtyFields(),
		Description: p.description,
		Discount:    p.discount.Float64(),
		Status:      string(p.status),
		UpdatedAt:   now,
	})
}

// MarkDeleted records the deletion of the product.
func (p *Product) MarkDeleted(now time.Time) {
	p.recordEvent(&ProductDeletedEvent{
		ProductID:   p.id,
		ProductCode: p.code,
		DeletedAt:   now,
	})
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
