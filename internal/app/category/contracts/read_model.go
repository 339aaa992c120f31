package contracts

import (
	"context"
	"time"
)

// CategoryDTO is a data transfer object for category queries.
type CategoryDTO struct {
	CategoryID  string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReadModel defines the interface for category queries.
type ReadModel interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*CategoryDTO, error)

	// ListActiveCategories returns active categories ordered by name
	ListActiveCategories(ctx context.Context) ([]*CategoryDTO, error)
}
