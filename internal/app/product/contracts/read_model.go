package contracts

import (
	"context"
	"time"
)

// CategorySummary is the category embedded in product query results.
type CategorySummary struct {
	CategoryID  string
	Name        string
	Description string
}

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID   string
	ProductCode string
	Name        string
	Description string
	Price       float64 // Approximate representation for display
	Discount    float64
	FinalPrice  float64 // Price with discount applied
	Image       string
	Status      string
	CategoryID  string
	Category    *CategorySummary // nil when the category row is gone
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	CategoryID string
	Search     string // case-insensitive substring of the name
	Page       int
	Limit      int
}

// ListResult contains paginated product list results.
type ListResult struct {
	Products   []*ProductDTO
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReadModel defines the interface for product queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID with its category populated
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves a page of products, newest first
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
}
